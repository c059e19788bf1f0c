package espn

import (
	"strings"

	"github.com/riskibarqy/scoreboard/internal/platform/payload"
)

// extractRecord returns the first non-empty record of a competitor, trying a
// plain string, an overall/total entry of a record list, the standing summary,
// and finally the team's record items.
func extractRecord(competitor payload.Map) string {
	if competitor == nil {
		return ""
	}
	if raw, ok := competitor["record"].(string); ok && strings.TrimSpace(raw) != "" {
		return strings.TrimSpace(raw)
	}

	for _, key := range []string{"records", "record"} {
		if summary := overallRecord(competitor.Maps(key)); summary != "" {
			return summary
		}
	}

	if summary := payload.FirstNonEmpty(
		competitor.String("standingSummary"),
		competitor.String("team", "standingSummary"),
	); summary != "" {
		return summary
	}

	return recordFromItems(competitor.Map("team", "record").Maps("items"))
}

func overallRecord(records []payload.Map) string {
	for _, rec := range records {
		if isOverall(rec.String("name")) || isOverall(rec.String("type")) {
			if summary := rec.FirstString("summary", "displayValue"); summary != "" {
				return summary
			}
		}
	}
	return ""
}

func recordFromItems(items []payload.Map) string {
	if summary := overallRecord(items); summary != "" {
		return summary
	}
	for _, item := range items {
		if summary := item.String("summary"); summary != "" {
			return summary
		}
	}
	return ""
}

func isOverall(v string) bool {
	v = strings.ToLower(v)
	return v == "overall" || v == "total"
}
