package usecase

import (
	"testing"
	"time"

	"github.com/riskibarqy/scoreboard/internal/domain/league"
	"github.com/riskibarqy/scoreboard/internal/domain/match"
	leaguemock "github.com/riskibarqy/scoreboard/internal/mocks/domain/league"
	"github.com/stretchr/testify/mock"
)

var (
	nbaLeague    = league.League{ID: "nba", Name: "NBA", Sport: "basketball", Slug: "nba", Family: league.FamilyBasketball, Timezone: "America/New_York"}
	nflLeague    = league.League{ID: "nfl", Name: "NFL", Sport: "football", Slug: "nfl", Family: league.FamilyFootball, Timezone: "America/New_York"}
	eplLeague    = league.League{ID: "eng.1", Name: "Premier League", Sport: "soccer", Slug: "eng.1", Family: league.FamilySoccer, Timezone: "Europe/London"}
	laligaLeague = league.League{ID: "esp.1", Name: "LaLiga", Sport: "soccer", Slug: "esp.1", Family: league.FamilySoccer, Timezone: "Europe/Madrid"}
	uclLeague    = league.League{ID: "uefa.champions", Name: "Champions League", Sport: "soccer", Slug: "uefa.champions", Family: league.FamilySoccer, Timezone: "Europe/Zurich"}
)

// newCatalogRepo answers GetByID for the given leagues and reports every other
// id as missing.
func newCatalogRepo(t *testing.T, leagues ...league.League) *leaguemock.Repository {
	t.Helper()

	repo := leaguemock.NewRepository(t)
	for _, lg := range leagues {
		repo.On("GetByID", mock.Anything, lg.ID).Return(lg, true, nil).Maybe()
	}
	repo.On("GetByID", mock.Anything, mock.Anything).Return(league.League{}, false, nil).Maybe()
	return repo
}

func scheduledMatch(id, leagueID string, start time.Time, status match.Status) match.Match {
	return match.Match{
		ID:        id,
		LeagueID:  leagueID,
		Home:      match.Team{ID: id + "-h", Name: "Home " + id},
		Away:      match.Team{ID: id + "-a", Name: "Away " + id},
		Status:    status,
		StartTime: start,
	}
}

func matchIDs(matches []match.Match) []string {
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.ID)
	}
	return out
}

func equalIDs(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
