package memory

import "github.com/riskibarqy/scoreboard/internal/domain/league"

const (
	LeagueIDNBA             = "nba"
	LeagueIDNFL             = "nfl"
	LeagueIDPremierLeague   = "eng.1"
	LeagueIDLaLiga          = "esp.1"
	LeagueIDSerieA          = "ita.1"
	LeagueIDBundesliga      = "ger.1"
	LeagueIDLigue1          = "fra.1"
	LeagueIDChampionsLeague = "uefa.champions"
	LeagueIDMLS             = "usa.1"
	LeagueIDWNBA            = "wnba"
	LeagueIDCollegeFootball = "college-football"
	LeagueIDEuropaLeague    = "uefa.europa"
)

// SeedLeagues is the built-in catalog used when no catalog file is configured.
func SeedLeagues() []league.League {
	return []league.League{
		{ID: LeagueIDNBA, Name: "NBA", Sport: "basketball", Slug: "nba", Family: league.FamilyBasketball, Timezone: "America/New_York"},
		{ID: LeagueIDWNBA, Name: "WNBA", Sport: "basketball", Slug: "wnba", Family: league.FamilyBasketball, Timezone: "America/New_York"},
		{ID: LeagueIDNFL, Name: "NFL", Sport: "football", Slug: "nfl", Family: league.FamilyFootball, Timezone: "America/New_York"},
		{ID: LeagueIDCollegeFootball, Name: "NCAA Football", Sport: "football", Slug: "college-football", Family: league.FamilyFootball, Timezone: "America/New_York"},
		{ID: LeagueIDPremierLeague, Name: "Premier League", Sport: "soccer", Slug: "eng.1", Family: league.FamilySoccer, Timezone: "Europe/London"},
		{ID: LeagueIDLaLiga, Name: "LaLiga", Sport: "soccer", Slug: "esp.1", Family: league.FamilySoccer, Timezone: "Europe/Madrid"},
		{ID: LeagueIDSerieA, Name: "Serie A", Sport: "soccer", Slug: "ita.1", Family: league.FamilySoccer, Timezone: "Europe/Rome"},
		{ID: LeagueIDBundesliga, Name: "Bundesliga", Sport: "soccer", Slug: "ger.1", Family: league.FamilySoccer, Timezone: "Europe/Berlin"},
		{ID: LeagueIDLigue1, Name: "Ligue 1", Sport: "soccer", Slug: "fra.1", Family: league.FamilySoccer, Timezone: "Europe/Paris"},
		{ID: LeagueIDChampionsLeague, Name: "UEFA Champions League", Sport: "soccer", Slug: "uefa.champions", Family: league.FamilySoccer, Timezone: "Europe/Zurich"},
		{ID: LeagueIDEuropaLeague, Name: "UEFA Europa League", Sport: "soccer", Slug: "uefa.europa", Family: league.FamilySoccer, Timezone: "Europe/Zurich"},
		{ID: LeagueIDMLS, Name: "MLS", Sport: "soccer", Slug: "usa.1", Family: league.FamilySoccer, Timezone: "America/New_York"},
	}
}

// DefaultTopMatchLeagues and DefaultTopNewsLeagues back the top pseudo-league
// when configuration leaves the rosters empty.
func DefaultTopMatchLeagues() []string {
	return []string{
		LeagueIDNBA, LeagueIDNFL, LeagueIDPremierLeague, LeagueIDLaLiga,
		LeagueIDSerieA, LeagueIDBundesliga, LeagueIDLigue1, LeagueIDChampionsLeague,
	}
}

func DefaultTopNewsLeagues() []string {
	return []string{LeagueIDNBA, LeagueIDNFL, LeagueIDPremierLeague, LeagueIDLaLiga, LeagueIDChampionsLeague}
}
