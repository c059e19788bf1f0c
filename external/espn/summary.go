package espn

import (
	"strings"

	"github.com/riskibarqy/scoreboard/internal/domain/league"
	"github.com/riskibarqy/scoreboard/internal/domain/match"
	"github.com/riskibarqy/scoreboard/internal/platform/payload"
)

// parseSummary maps a game summary document. It returns false when the
// document has no competition to build a match from.
func parseSummary(root payload.Map, lg league.League, matchID string) (*match.MatchDetail, bool) {
	header := root.Map("header")
	comp := header.First("competitions")
	if comp == nil {
		return nil, false
	}

	base := parseCompetition(comp, lg.ID)
	base.ID = payload.FirstNonEmpty(header.String("id"), comp.String("id"), matchID)

	home, away := splitCompetitors(comp.Maps("competitors"))
	base.Home.Record = extractRecord(home)
	base.Away.Record = extractRecord(away)

	gameInfo := parseGameInfo(root.Map("gameInfo"))
	if base.Venue == "" && gameInfo != nil {
		base.Venue = gameInfo.Venue
	}

	detail := &match.MatchDetail{
		Match:          base,
		Events:         parseEvents(root),
		Stats:          parseTeamStats(root.Map("boxscore").Maps("teams"), base.Home.ID),
		Drives:         parseDrives(root.Map("drives").Maps("previous")),
		ScoringPlays:   parseScoringPlays(root.Maps("scoringPlays")),
		WinProbability: parseWinProbability(root.Maps("winprobability")),
		GameInfo:       gameInfo,
	}
	detail.HomePlayers, detail.AwayPlayers = parsePlayers(root, base.Home.ID, base.Away.ID)
	return detail, true
}

// sideOf resolves whether a boxscore or roster node belongs to the home team.
// index is used when neither homeAway nor the team id decides it; upstream
// lists the away side first in these blocks.
func sideOf(node payload.Map, homeID string, index int) string {
	switch strings.ToLower(node.String("homeAway")) {
	case "home":
		return "home"
	case "away":
		return "away"
	}
	if id := node.String("team", "id"); id != "" && homeID != "" {
		if id == homeID {
			return "home"
		}
		return "away"
	}
	if index == 0 {
		return "away"
	}
	return "home"
}

func parseTeamStats(teams []payload.Map, homeID string) []match.MatchStat {
	out := make([]match.MatchStat, 0, 16)
	indexByName := make(map[string]int, 16)

	for i, team := range teams {
		side := sideOf(team, homeID, i)
		for _, stat := range team.Maps("statistics") {
			name := stat.FirstString("name", "label", "abbreviation")
			if name == "" {
				continue
			}
			idx, ok := indexByName[name]
			if !ok {
				label := stat.FirstString("label", "displayName", "abbreviation", "name")
				out = append(out, match.MatchStat{
					Name:         name,
					Label:        label,
					IsPercentage: isPercentageStat(name, label),
				})
				idx = len(out) - 1
				indexByName[name] = idx
			}
			value := stat.FirstString("displayValue", "value")
			if side == "home" {
				out[idx].HomeValue = value
			} else {
				out[idx].AwayValue = value
			}
		}
	}
	return out
}

func isPercentageStat(name, label string) bool {
	lowered := strings.ToLower(name)
	return strings.HasSuffix(lowered, "pct") ||
		strings.Contains(lowered, "percentage") ||
		strings.Contains(label, "%")
}

func parsePlayers(root payload.Map, homeID, awayID string) ([]match.PlayerStat, []match.PlayerStat) {
	var home, away []match.PlayerStat

	assign := func(node payload.Map, index int) {
		rows := ExtractRoster(node)
		if len(rows) == 0 {
			return
		}
		if sideOf(node, homeID, index) == "home" {
			home = append(home, rows...)
		} else {
			away = append(away, rows...)
		}
	}

	for i, node := range root.Map("boxscore").Maps("players") {
		assign(node, i)
	}
	if len(home) == 0 && len(away) == 0 {
		for i, node := range root.Maps("rosters") {
			assign(node, i)
		}
	}
	return home, away
}

func parseEvents(root payload.Map) []match.MatchEvent {
	items := root.Maps("keyEvents")
	if len(items) == 0 {
		items = root.Maps("plays")
	}

	out := make([]match.MatchEvent, 0, len(items))
	for _, item := range items {
		out = append(out, parseMatchEvent(item))
	}
	return out
}

func parseMatchEvent(item payload.Map) match.MatchEvent {
	eventType := payload.FirstNonEmpty(item.String("type", "text"), item.String("type", "type"), item.String("type"))
	event := match.MatchEvent{
		ID:          item.String("id"),
		Type:        eventType,
		Description: item.FirstString("text", "shortText"),
		Clock:       item.String("clock", "displayValue"),
		TeamID:      item.String("team", "id"),
	}

	kind := eventKind(eventType)
	for i, raw := range item.Maps("participants") {
		name := payload.FirstNonEmpty(
			raw.String("athlete", "displayName"),
			raw.String("athlete", "fullName"),
			raw.String("displayName"),
		)
		if name == "" {
			continue
		}
		role := payload.FirstNonEmpty(raw.String("role"), raw.String("type"))
		if role == "" {
			role = inferRole(kind, i)
		}
		event.Participants = append(event.Participants, match.Participant{Name: name, Role: role})
	}

	if len(event.Participants) > 0 {
		event.PlayerName = event.Participants[0].Name
	}
	for _, p := range event.Participants {
		if strings.EqualFold(p.Role, "assist") {
			event.AssistName = p.Name
			break
		}
	}
	return event
}

type eventCategory int

const (
	eventOther eventCategory = iota
	eventSubstitution
	eventGoal
)

// Goal kicks are restarts, not goals.
func eventKind(eventType string) eventCategory {
	lowered := strings.ToLower(eventType)
	if strings.Contains(lowered, "substitution") {
		return eventSubstitution
	}
	if strings.Contains(lowered, "goal") && !strings.Contains(lowered, "kick") {
		return eventGoal
	}
	return eventOther
}

func inferRole(kind eventCategory, index int) string {
	switch kind {
	case eventSubstitution:
		if index == 0 {
			return "out"
		}
		if index == 1 {
			return "in"
		}
	case eventGoal:
		if index == 0 {
			return "scorer"
		}
		if index == 1 {
			return "assist"
		}
	}
	return ""
}

func parseDrives(items []payload.Map) []match.Drive {
	out := make([]match.Drive, 0, len(items))
	for _, item := range items {
		plays, _ := item.Int("offensivePlays")
		yards, _ := item.Int("yards")
		out = append(out, match.Drive{
			ID:          item.String("id"),
			Description: item.String("description"),
			Result:      item.FirstString("displayResult", "result"),
			TeamID:      item.String("team", "id"),
			Plays:       plays,
			Yards:       yards,
			TimeElapsed: item.String("timeElapsed", "displayValue"),
		})
	}
	return out
}

func parseScoringPlays(items []payload.Map) []match.ScoringPlay {
	out := make([]match.ScoringPlay, 0, len(items))
	for _, item := range items {
		period, _ := item.Int("period", "number")
		homeScore, _ := item.Int("homeScore")
		awayScore, _ := item.Int("awayScore")
		out = append(out, match.ScoringPlay{
			ID:          item.String("id"),
			Type:        item.String("type", "text"),
			Description: item.String("text"),
			Period:      period,
			Clock:       item.String("clock", "displayValue"),
			TeamID:      item.String("team", "id"),
			HomeScore:   homeScore,
			AwayScore:   awayScore,
		})
	}
	return out
}

func parseWinProbability(items []payload.Map) []match.WinProbabilitySample {
	out := make([]match.WinProbabilitySample, 0, len(items))
	for _, item := range items {
		home, ok := item.Float("homeWinPercentage")
		if !ok {
			continue
		}
		tie, _ := item.Float("tiePercentage")
		out = append(out, match.WinProbabilitySample{
			PlayID:         item.String("playId"),
			HomeWinPercent: home,
			TieWinPercent:  tie,
		})
	}
	return out
}

func parseGameInfo(info payload.Map) *match.GameInfo {
	if info == nil {
		return nil
	}
	out := &match.GameInfo{
		Venue: info.String("venue", "fullName"),
		City:  info.String("venue", "address", "city"),
	}
	out.Attendance, _ = info.Int("attendance")
	for _, official := range info.Maps("officials") {
		if name := official.FirstString("displayName", "fullName"); name != "" {
			out.Officials = append(out.Officials, name)
		}
	}
	return out
}
