package espn

import (
	"sort"

	"github.com/riskibarqy/scoreboard/internal/domain/league"
	"github.com/riskibarqy/scoreboard/internal/domain/standing"
	"github.com/riskibarqy/scoreboard/internal/platform/payload"
)

const maxStandingsDepth = 16

// flattenStandings walks the grouping tree depth first. Every entry is tagged
// with the name of its nearest enclosing group.
func flattenStandings(root payload.Map, family league.Family) []standing.Entry {
	out := make([]standing.Entry, 0, 32)

	var walk func(node payload.Map, group string, depth int)
	walk = func(node payload.Map, group string, depth int) {
		if node == nil || depth > maxStandingsDepth {
			return
		}
		if name := node.FirstString("name", "abbreviation"); name != "" {
			group = name
		}
		for _, entry := range node.Maps("standings", "entries") {
			out = append(out, parseStandingEntry(entry, group, family))
		}
		for _, child := range node.Maps("children") {
			walk(child, group, depth+1)
		}
	}
	walk(root, "", 0)

	sortStandings(out, family)
	return out
}

func parseStandingEntry(entry payload.Map, group string, family league.Family) standing.Entry {
	stats := indexStats(entry.Maps("stats"))
	team := entry.Map("team")

	out := standing.Entry{
		Group: group,
		Team:  teamFromNode(team, ""),
		Stats: standing.Stats{
			Wins:          int(stats.number("wins")),
			Losses:        int(stats.number("losses")),
			Ties:          int(stats.number("ties")),
			GamesPlayed:   int(stats.number("gamesPlayed")),
			WinPercent:    stats.number("winPercent"),
			GamesBehind:   stats.number("gamesBehind"),
			PointsFor:     int(stats.number("pointsFor")),
			PointsAgainst: int(stats.number("pointsAgainst")),
			Differential:  int(stats.number("differential", "pointDifferential")),
			Streak:        stats.display("streak"),
			Points:        int(stats.number("points")),
		},
		Rank: int(stats.number("rank", "playoffSeed")),
	}

	if family == league.FamilySoccer {
		// Upstream reports soccer draws as ties.
		out.Stats.Draws = int(stats.number("draws", "ties"))
		out.Stats.Ties = 0
		out.Stats.GoalDifference = int(stats.number("goalDifference", "pointDifferential"))
	}
	return out
}

type statIndex map[string]payload.Map

func indexStats(stats []payload.Map) statIndex {
	out := make(statIndex, len(stats))
	for _, stat := range stats {
		for _, key := range []string{"name", "type"} {
			if code := stat.String(key); code != "" {
				if _, exists := out[code]; !exists {
					out[code] = stat
				}
			}
		}
	}
	return out
}

// number reads the first present code, defaulting to 0.
func (s statIndex) number(codes ...string) float64 {
	for _, code := range codes {
		stat, ok := s[code]
		if !ok {
			continue
		}
		if v, ok := stat.Float("value"); ok {
			return v
		}
		if v, ok := stat.Float("displayValue"); ok {
			return v
		}
	}
	return 0
}

func (s statIndex) display(code string) string {
	stat, ok := s[code]
	if !ok {
		return ""
	}
	return stat.FirstString("displayValue", "value")
}

// sortStandings orders by rank when every entry has one. Otherwise it orders
// by win percentage or points, keeping upstream order for ties.
func sortStandings(entries []standing.Entry, family league.Family) {
	allRanked := len(entries) > 0
	for _, e := range entries {
		if e.Rank <= 0 {
			allRanked = false
			break
		}
	}

	switch {
	case allRanked:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Rank < entries[j].Rank
		})
	case family.RanksByWinPercent():
		sort.SliceStable(entries, func(i, j int) bool {
			if entries[i].Stats.WinPercent != entries[j].Stats.WinPercent {
				return entries[i].Stats.WinPercent > entries[j].Stats.WinPercent
			}
			return entries[i].Stats.Wins > entries[j].Stats.Wins
		})
	default:
		sort.SliceStable(entries, func(i, j int) bool {
			if entries[i].Stats.Points != entries[j].Stats.Points {
				return entries[i].Stats.Points > entries[j].Stats.Points
			}
			return entries[i].Stats.GoalDifference > entries[j].Stats.GoalDifference
		})
	}
}
