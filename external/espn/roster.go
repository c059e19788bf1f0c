package espn

import (
	"strings"

	"github.com/riskibarqy/scoreboard/internal/domain/match"
	"github.com/riskibarqy/scoreboard/internal/platform/payload"
)

type rosterForm int

const (
	rosterFormUnknown rosterForm = iota
	rosterFormGrouped
	rosterFormFlat
)

// detectRosterForm probes the structure: grouped payloads carry statistics
// groups with labels, flat payloads carry a roster list.
func detectRosterForm(entry payload.Map) rosterForm {
	for _, group := range entry.Maps("statistics") {
		if group.Has("labels") || group.Has("athletes") {
			return rosterFormGrouped
		}
	}
	if entry.Has("roster") {
		return rosterFormFlat
	}
	return rosterFormUnknown
}

// ExtractRoster maps one team's roster payload into player rows.
func ExtractRoster(entry payload.Map) []match.PlayerStat {
	switch detectRosterForm(entry) {
	case rosterFormGrouped:
		return extractGroupedRoster(entry.Maps("statistics"))
	case rosterFormFlat:
		return extractFlatRoster(entry.Maps("roster"))
	default:
		return nil
	}
}

func extractGroupedRoster(groups []payload.Map) []match.PlayerStat {
	out := make([]match.PlayerStat, 0, 16)
	for _, group := range groups {
		category := group.FirstString("name", "type")
		starterGroup := isStarterGroup(category)
		labels := stringList(group.Slice("labels"))
		if len(labels) == 0 {
			labels = stringList(group.Slice("keys"))
		}

		for _, athleteEntry := range group.Maps("athletes") {
			row := basePlayerRow(athleteEntry)
			row.Category = category
			if starter, ok := athleteEntry.Bool("starter"); ok {
				row.Starter = starter
			} else {
				row.Starter = starterGroup
			}
			if active, ok := athleteEntry.Bool("active"); ok {
				row.Active = active
			} else if dnp, ok := athleteEntry.Bool("didNotPlay"); ok {
				row.Active = !dnp
			}

			values := athleteEntry.Slice("stats")
			row.Stats = make(map[string]string, len(labels))
			for i, label := range labels {
				if i >= len(values) {
					break
				}
				if label == "" {
					continue
				}
				if value, ok := payload.ToString(values[i]); ok {
					row.Stats[label] = value
				}
			}
			out = append(out, row)
		}
	}
	return out
}

func extractFlatRoster(entries []payload.Map) []match.PlayerStat {
	out := make([]match.PlayerStat, 0, len(entries))
	for _, entry := range entries {
		row := basePlayerRow(entry)
		row.Starter, _ = entry.Bool("starter")
		row.Active, _ = entry.Bool("active")
		row.SubbedIn = substitutionFlag(entry, "subbedIn")
		row.SubbedOut = substitutionFlag(entry, "subbedOut")
		if row.Starter {
			row.Category = "starters"
		} else {
			row.Category = "bench"
		}
		row.Stats = flatStats(entry["stats"])
		out = append(out, row)
	}
	return out
}

func basePlayerRow(entry payload.Map) match.PlayerStat {
	athlete := entry.Map("athlete")
	position := entry.Map("position")
	if position == nil {
		position = athlete.Map("position")
	}

	headshot := athlete.String("headshot", "href")
	if headshot == "" {
		headshot = athlete.String("headshot")
	}

	return match.PlayerStat{
		ID: payload.FirstNonEmpty(athlete.String("id"), entry.String("id")),
		Name: payload.FirstNonEmpty(
			athlete.String("displayName"),
			athlete.String("fullName"),
			athlete.String("shortName"),
		),
		Position:     position.String("abbreviation"),
		PositionName: position.FirstString("displayName", "name"),
		Jersey:       payload.FirstNonEmpty(entry.String("jersey"), athlete.String("jersey")),
		Headshot:     headshot,
	}
}

// flatStats accepts either [{name|label, value|displayValue}] or a key/value object.
func flatStats(raw any) map[string]string {
	out := make(map[string]string)
	if obj, ok := payload.AsMap(raw); ok {
		for key, value := range obj {
			if v, ok := payload.ToString(value); ok && strings.TrimSpace(key) != "" {
				out[key] = v
			}
		}
		return out
	}

	items, _ := raw.([]any)
	for _, item := range items {
		stat, ok := payload.AsMap(item)
		if !ok {
			continue
		}
		key := stat.FirstString("name", "label", "abbreviation")
		if key == "" {
			continue
		}
		value, ok := payload.ToString(stat["value"])
		if !ok {
			value, ok = payload.ToString(stat["displayValue"])
		}
		if ok {
			out[key] = value
		}
	}
	return out
}

func substitutionFlag(entry payload.Map, key string) bool {
	if v, ok := entry.Bool(key); ok {
		return v
	}
	v, _ := entry.Bool(key, "didSub")
	return v
}

func isStarterGroup(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "starters", "starter":
		return true
	default:
		return false
	}
}

func stringList(items []any) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		v, _ := payload.ToString(item)
		out = append(out, v)
	}
	return out
}
