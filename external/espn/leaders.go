package espn

import (
	"regexp"
	"strings"

	"github.com/riskibarqy/scoreboard/internal/domain/leader"
	"github.com/riskibarqy/scoreboard/internal/platform/payload"
)

var numberRunRegex = regexp.MustCompile(`\d+(?:\.\d+)?`)

// leaderCategories probes the known places a leaders document keeps its categories.
func leaderCategories(root payload.Map) []payload.Map {
	if categories := root.Maps("leaders", "categories"); len(categories) > 0 {
		return categories
	}
	if categories := root.Maps("categories"); len(categories) > 0 {
		return categories
	}
	if categories := root.Maps("leaders"); len(categories) > 0 {
		return categories
	}
	return root.Maps("stats")
}

func parseLeaders(root payload.Map) []leader.Category {
	categories := leaderCategories(root)
	out := make([]leader.Category, 0, len(categories))
	for _, category := range categories {
		item, ok := parseLeaderCategory(category)
		if !ok {
			continue
		}
		out = append(out, item)
	}
	return out
}

// parseLeaderCategory keeps upstream order; upstream lists leaders by rank.
func parseLeaderCategory(category payload.Map) (leader.Category, bool) {
	name := category.FirstString("name", "abbreviation")
	if name == "" {
		return leader.Category{}, false
	}

	records := category.First("groups").Maps("athletes")
	if len(records) == 0 {
		records = category.Maps("leaders")
	}

	out := leader.Category{
		Name:        name,
		DisplayName: payload.FirstNonEmpty(category.String("displayName"), category.String("shortDisplayName"), name),
		Leaders:     make([]leader.Leader, 0, len(records)),
	}
	for i, record := range records {
		item, ok := parseLeader(record, i)
		if !ok {
			continue
		}
		out.Leaders = append(out.Leaders, item)
	}
	return out, true
}

func parseLeader(record payload.Map, index int) (leader.Leader, bool) {
	var out leader.Leader

	athlete := record.Map("athlete")
	team := record.Map("team")
	switch {
	case athlete != nil:
		if nested := athlete.Map("team"); nested != nil {
			team = nested
		}
		out.Kind = leader.KindAthlete
		out.ID = athlete.String("id")
		out.Name = athlete.FirstString("displayName", "fullName", "shortName")
		out.Headshot = payload.FirstNonEmpty(athlete.String("headshot", "href"), athlete.String("headshot"))
	case team != nil:
		out.Kind = leader.KindTeam
		out.ID = team.String("id")
		out.Name = team.FirstString("displayName", "name", "abbreviation")
	default:
		return leader.Leader{}, false
	}
	out.Team = team.FirstString("displayName", "abbreviation", "name")
	out.TeamLogo = teamLogo(team)

	value, hasValue, display := leaderValue(record)
	out.Value = value
	out.DisplayValue = cleanDisplayValue(display, value, hasValue)

	out.Rank = index + 1
	if rank, ok := record.Int("rank"); ok && rank > 0 {
		out.Rank = rank
	}
	return out, true
}

// leaderValue prefers the first nested statistic over the record's own pair.
func leaderValue(record payload.Map) (float64, bool, string) {
	source := record
	if stat := record.First("statistics"); stat != nil && (stat.Has("value") || stat.Has("displayValue")) {
		source = stat
	}
	value, ok := source.Float("value")
	return value, ok, source.String("displayValue")
}

// cleanDisplayValue turns verbose strings such as "Matches: 10, Goals: 7" into
// a bare number: the numeric value when present, else the trailing number run.
func cleanDisplayValue(display string, value float64, hasValue bool) string {
	if display == "" {
		if hasValue {
			return payload.FormatNumber(value)
		}
		return ""
	}
	if !strings.Contains(display, ":") {
		return display
	}
	if hasValue {
		return payload.FormatNumber(value)
	}
	runs := numberRunRegex.FindAllString(display, -1)
	if len(runs) == 0 {
		return display
	}
	return runs[len(runs)-1]
}
