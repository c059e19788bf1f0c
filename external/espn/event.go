package espn

import (
	"strings"
	"time"

	"github.com/riskibarqy/scoreboard/internal/domain/league"
	"github.com/riskibarqy/scoreboard/internal/domain/match"
	"github.com/riskibarqy/scoreboard/internal/platform/dateutil"
	"github.com/riskibarqy/scoreboard/internal/platform/payload"
)

const (
	homePlaceholder = "Home Team"
	awayPlaceholder = "Away Team"

	halftimeStatusName = "STATUS_HALFTIME"
)

func parseScoreboard(root payload.Map, lg league.League) match.Schedule {
	events := root.Maps("events")
	out := match.Schedule{
		Matches:  make([]match.Match, 0, len(events)),
		Calendar: parseCalendar(root, lg),
	}
	for _, event := range events {
		item, ok := parseEvent(event, lg.ID)
		if !ok {
			continue
		}
		out.Matches = append(out.Matches, item)
	}
	return out
}

func parseEvent(event payload.Map, leagueID string) (match.Match, bool) {
	comp := event.First("competitions")
	id := payload.FirstNonEmpty(event.String("id"), comp.String("id"))
	if id == "" {
		return match.Match{}, false
	}

	item := parseCompetition(comp, leagueID)
	item.ID = id
	if item.StartTime.IsZero() {
		item.StartTime = dateutil.ParseUpstreamTime(event.String("date"))
	}
	if comp == nil || !comp.Has("status") {
		applyStatus(&item, event.Map("status"))
	}
	return item, true
}

// parseCompetition maps one competition node shared by scoreboard events and
// summary headers.
func parseCompetition(comp payload.Map, leagueID string) match.Match {
	home, away := splitCompetitors(comp.Maps("competitors"))

	item := match.Match{
		ID:        comp.String("id"),
		LeagueID:  leagueID,
		Home:      parseTeam(home, homePlaceholder),
		Away:      parseTeam(away, awayPlaceholder),
		HomeScore: parseScore(home["score"]),
		AwayScore: parseScore(away["score"]),
		Status:    match.StatusScheduled,
		StartTime: dateutil.ParseUpstreamTime(comp.String("date")),
		Venue:     comp.FirstString("venueName"),
	}
	if item.Venue == "" {
		item.Venue = comp.String("venue", "fullName")
	}
	applyStatus(&item, comp.Map("status"))
	return item
}

func splitCompetitors(competitors []payload.Map) (payload.Map, payload.Map) {
	var home, away payload.Map
	for _, c := range competitors {
		switch strings.ToLower(c.String("homeAway")) {
		case "home":
			home = c
		case "away":
			away = c
		}
	}
	if home == nil && len(competitors) > 0 {
		home = competitors[0]
	}
	if away == nil && len(competitors) > 1 {
		away = competitors[1]
	}
	return home, away
}

func parseTeam(competitor payload.Map, placeholder string) match.Team {
	out := teamFromNode(competitor.Map("team"), placeholder)
	if out.ID == "" {
		out.ID = competitor.String("id")
	}

	for i, line := range competitor.Maps("linescores") {
		period := i + 1
		if v, ok := line.Int("period"); ok && v > 0 {
			period = v
		}
		out.LineScores = append(out.LineScores, match.LineScore{
			Period: period,
			Value:  line.FirstString("displayValue", "value"),
		})
	}
	return out
}

// teamFromNode never leaves the name empty when a placeholder is given.
func teamFromNode(team payload.Map, placeholder string) match.Team {
	return match.Team{
		ID: team.String("id"),
		Name: payload.FirstNonEmpty(
			team.String("shortDisplayName"),
			team.String("displayName"),
			team.String("name"),
			placeholder,
		),
		ShortName: team.FirstString("abbreviation", "shortDisplayName"),
		Logo:      teamLogo(team),
	}
}

func teamLogo(team payload.Map) string {
	if logo := team.String("logo"); logo != "" {
		return logo
	}
	return team.First("logos").String("href")
}

// parseScore accepts numbers, numeric strings and {value, displayValue} objects.
// Anything else is 0.
func parseScore(raw any) int {
	if obj, ok := payload.AsMap(raw); ok {
		if v, ok := obj.Float("value"); ok {
			return int(v)
		}
		if v, ok := obj.Float("displayValue"); ok {
			return int(v)
		}
		return 0
	}
	if v, ok := payload.ToFloat(raw); ok {
		return int(v)
	}
	return 0
}

func applyStatus(item *match.Match, status payload.Map) {
	if status == nil {
		return
	}
	item.Status = match.StatusFromState(statusState(status))
	item.Clock = status.String("displayClock")
	if period, ok := status.Int("period"); ok {
		item.Period = period
	}
	item.StatusDetail = payload.FirstNonEmpty(
		status.String("type", "shortDetail"),
		status.String("type", "detail"),
		status.String("type", "description"),
	)
}

func statusState(status payload.Map) string {
	if strings.EqualFold(status.String("type", "name"), halftimeStatusName) {
		return "halftime"
	}
	return status.String("type", "state")
}

func parseCalendar(root payload.Map, lg league.League) []match.CalendarEntry {
	items := root.First("leagues").Slice("calendar")
	out := make([]match.CalendarEntry, 0, len(items))
	add := func(raw string) {
		if raw = normalizeCalendarDate(raw); raw != "" {
			out = append(out, match.CalendarEntry{Date: raw, Sport: lg.Sport, LeagueID: lg.ID})
		}
	}

	for _, item := range items {
		if s, ok := item.(string); ok {
			add(s)
			continue
		}
		obj, ok := payload.AsMap(item)
		if !ok {
			continue
		}
		entries := obj.Maps("entries")
		if len(entries) == 0 {
			add(obj.String("startDate"))
			continue
		}
		for _, entry := range entries {
			add(entry.String("startDate"))
		}
	}
	return out
}

func normalizeCalendarDate(raw string) string {
	parsed := dateutil.ParseUpstreamTime(raw)
	if parsed.IsZero() {
		return strings.TrimSpace(raw)
	}
	return parsed.Format(time.DateOnly)
}
