package dateutil

import (
	"strings"
	"time"
	_ "time/tzdata"
)

const QueryDateLayout = "20060102"

var upstreamTimeLayouts = []string{
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05Z07:00",
	time.RFC3339Nano,
	"2006-01-02T15:04Z",
	"2006-01-02",
}

// SameCalendarDay compares year, month and day of each value in its own location.
// Callers convert both values to the same location first when that matters.
func SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// LeagueQueryDate renders the calendar day of date as the YYYYMMDD string used
// by the league's home timezone. The day is pinned to noon before converting so
// DST shifts and UTC offsets cannot flip it across midnight.
func LeagueQueryDate(date time.Time, timezone string) string {
	noon := atNoon(date)

	timezone = strings.TrimSpace(timezone)
	if timezone == "" {
		return noon.UTC().Format(QueryDateLayout)
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return noon.UTC().Format(QueryDateLayout)
	}
	return noon.In(loc).Format(QueryDateLayout)
}

// PreviousDay returns noon of the calendar day before date, in date's location.
func PreviousDay(date time.Time) time.Time {
	return atNoon(date).AddDate(0, 0, -1)
}

// ParseUpstreamTime returns the zero time when raw matches none of the known layouts.
func ParseUpstreamTime(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range upstreamTimeLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.UTC()
		}
	}
	return time.Time{}
}

func atNoon(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 12, 0, 0, 0, date.Location())
}
