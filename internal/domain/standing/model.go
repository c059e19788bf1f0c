package standing

import "github.com/riskibarqy/scoreboard/internal/domain/match"

// Stats holds every family's record fields. Fields a family does not report stay zero.
type Stats struct {
	Wins           int
	Losses         int
	Ties           int
	Draws          int
	GamesPlayed    int
	WinPercent     float64
	GamesBehind    float64
	PointsFor      int
	PointsAgainst  int
	Differential   int
	Streak         string
	Points         int
	GoalDifference int
}

// Entry is one team's row in a standings table. Rank is 0 when upstream sent none.
type Entry struct {
	Group string
	Team  match.Team
	Rank  int
	Stats Stats
}
