package espn

import (
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/scoreboard/internal/domain/league"
	"github.com/riskibarqy/scoreboard/internal/platform/payload"
)

var (
	testNBA = league.League{ID: "nba", Name: "NBA", Sport: "basketball", Slug: "nba", Family: league.FamilyBasketball, Timezone: "America/New_York"}
	testNFL = league.League{ID: "nfl", Name: "NFL", Sport: "football", Slug: "nfl", Family: league.FamilyFootball, Timezone: "America/New_York"}
	testEPL = league.League{ID: "eng.1", Name: "Premier League", Sport: "soccer", Slug: "eng.1", Family: league.FamilySoccer, Timezone: "Europe/London"}
)

func decodeFixture(t *testing.T, raw string) payload.Map {
	t.Helper()

	var out map[string]any
	if err := sonic.Unmarshal([]byte(raw), &out); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return payload.Map(out)
}
