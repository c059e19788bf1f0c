package httpapi

import (
	"time"

	"github.com/riskibarqy/scoreboard/internal/domain/leader"
	"github.com/riskibarqy/scoreboard/internal/domain/league"
	"github.com/riskibarqy/scoreboard/internal/domain/match"
	"github.com/riskibarqy/scoreboard/internal/domain/news"
	"github.com/riskibarqy/scoreboard/internal/domain/standing"
)

type leagueDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Sport    string `json:"sport"`
	Family   string `json:"family"`
	Timezone string `json:"timezone,omitempty"`
}

type lineScoreDTO struct {
	Period int    `json:"period"`
	Value  string `json:"value"`
}

type teamDTO struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	ShortName  string         `json:"shortName,omitempty"`
	LogoURL    string         `json:"logoUrl,omitempty"`
	Record     string         `json:"record,omitempty"`
	LineScores []lineScoreDTO `json:"lineScores"`
}

type matchDTO struct {
	ID           string  `json:"id"`
	LeagueID     string  `json:"leagueId"`
	HomeTeam     teamDTO `json:"homeTeam"`
	AwayTeam     teamDTO `json:"awayTeam"`
	HomeScore    int     `json:"homeScore"`
	AwayScore    int     `json:"awayScore"`
	Status       string  `json:"status"`
	Clock        string  `json:"clock,omitempty"`
	Period       int     `json:"period"`
	StatusDetail string  `json:"statusDetail,omitempty"`
	StartTime    string  `json:"startTime"`
	Venue        string  `json:"venue,omitempty"`
}

type calendarEntryDTO struct {
	Date     string `json:"date"`
	Sport    string `json:"sport"`
	LeagueID string `json:"leagueId"`
}

type scheduleDTO struct {
	Matches  []matchDTO         `json:"matches"`
	Calendar []calendarEntryDTO `json:"calendar"`
}

type participantDTO struct {
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}

type matchEventDTO struct {
	ID           string           `json:"id,omitempty"`
	Type         string           `json:"type"`
	Description  string           `json:"description"`
	Clock        string           `json:"clock,omitempty"`
	TeamID       string           `json:"teamId,omitempty"`
	PlayerName   string           `json:"playerName,omitempty"`
	AssistName   string           `json:"assistName,omitempty"`
	Participants []participantDTO `json:"participants"`
}

type matchStatDTO struct {
	Name         string `json:"name"`
	Label        string `json:"label"`
	HomeValue    string `json:"homeValue"`
	AwayValue    string `json:"awayValue"`
	IsPercentage bool   `json:"isPercentage"`
}

type playerStatDTO struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Position     string            `json:"position,omitempty"`
	PositionName string            `json:"positionName,omitempty"`
	Jersey       string            `json:"jersey,omitempty"`
	HeadshotURL  string            `json:"headshotUrl,omitempty"`
	Stats        map[string]string `json:"stats"`
	Starter      bool              `json:"starter"`
	Category     string            `json:"category,omitempty"`
	Active       bool              `json:"active"`
	SubbedIn     bool              `json:"subbedIn"`
	SubbedOut    bool              `json:"subbedOut"`
}

type driveDTO struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Result      string `json:"result,omitempty"`
	TeamID      string `json:"teamId,omitempty"`
	Plays       int    `json:"plays"`
	Yards       int    `json:"yards"`
	TimeElapsed string `json:"timeElapsed,omitempty"`
}

type scoringPlayDTO struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Period      int    `json:"period"`
	Clock       string `json:"clock,omitempty"`
	TeamID      string `json:"teamId,omitempty"`
	HomeScore   int    `json:"homeScore"`
	AwayScore   int    `json:"awayScore"`
}

type winProbabilityDTO struct {
	PlayID         string  `json:"playId"`
	HomeWinPercent float64 `json:"homeWinPercent"`
	TieWinPercent  float64 `json:"tieWinPercent"`
}

type gameInfoDTO struct {
	Venue      string   `json:"venue,omitempty"`
	City       string   `json:"city,omitempty"`
	Attendance int      `json:"attendance"`
	Officials  []string `json:"officials"`
}

type matchDetailDTO struct {
	matchDTO
	Events         []matchEventDTO     `json:"events"`
	Stats          []matchStatDTO      `json:"stats"`
	HomePlayers    []playerStatDTO     `json:"homePlayers"`
	AwayPlayers    []playerStatDTO     `json:"awayPlayers"`
	Drives         []driveDTO          `json:"drives"`
	ScoringPlays   []scoringPlayDTO    `json:"scoringPlays"`
	WinProbability []winProbabilityDTO `json:"winProbability"`
	GameInfo       *gameInfoDTO        `json:"gameInfo,omitempty"`
}

type standingStatsDTO struct {
	Wins           int     `json:"wins"`
	Losses         int     `json:"losses"`
	Ties           int     `json:"ties"`
	Draws          int     `json:"draws"`
	GamesPlayed    int     `json:"gamesPlayed"`
	WinPercent     float64 `json:"winPercent"`
	GamesBehind    float64 `json:"gamesBehind"`
	PointsFor      int     `json:"pointsFor"`
	PointsAgainst  int     `json:"pointsAgainst"`
	Differential   int     `json:"differential"`
	Streak         string  `json:"streak,omitempty"`
	Points         int     `json:"points"`
	GoalDifference int     `json:"goalDifference"`
}

type standingDTO struct {
	Group string           `json:"group,omitempty"`
	Team  teamDTO          `json:"team"`
	Rank  int              `json:"rank"`
	Stats standingStatsDTO `json:"stats"`
}

type leaderDTO struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Team         string  `json:"team,omitempty"`
	TeamLogoURL  string  `json:"teamLogoUrl,omitempty"`
	HeadshotURL  string  `json:"headshotUrl,omitempty"`
	Value        float64 `json:"value"`
	DisplayValue string  `json:"displayValue"`
	Rank         int     `json:"rank"`
	Kind         string  `json:"kind"`
}

type leaderCategoryDTO struct {
	Name        string      `json:"name"`
	DisplayName string      `json:"displayName"`
	Leaders     []leaderDTO `json:"leaders"`
}

type articleDTO struct {
	Headline    string   `json:"headline"`
	Description string   `json:"description,omitempty"`
	PublishedAt string   `json:"publishedAt,omitempty"`
	Link        string   `json:"link,omitempty"`
	Images      []string `json:"images"`
	LeagueID    string   `json:"leagueId"`
}

func leagueToDTO(v league.League) leagueDTO {
	return leagueDTO{
		ID:       v.ID,
		Name:     v.Name,
		Sport:    v.Sport,
		Family:   string(v.Family),
		Timezone: v.Timezone,
	}
}

func teamToDTO(v match.Team) teamDTO {
	lineScores := make([]lineScoreDTO, 0, len(v.LineScores))
	for _, ls := range v.LineScores {
		lineScores = append(lineScores, lineScoreDTO{Period: ls.Period, Value: ls.Value})
	}

	return teamDTO{
		ID:         v.ID,
		Name:       v.Name,
		ShortName:  v.ShortName,
		LogoURL:    v.Logo,
		Record:     v.Record,
		LineScores: lineScores,
	}
}

func matchToDTO(v match.Match) matchDTO {
	return matchDTO{
		ID:           v.ID,
		LeagueID:     v.LeagueID,
		HomeTeam:     teamToDTO(v.Home),
		AwayTeam:     teamToDTO(v.Away),
		HomeScore:    v.HomeScore,
		AwayScore:    v.AwayScore,
		Status:       string(v.Status),
		Clock:        v.Clock,
		Period:       v.Period,
		StatusDetail: v.StatusDetail,
		StartTime:    formatTime(v.StartTime),
		Venue:        v.Venue,
	}
}

func scheduleToDTO(v match.Schedule) scheduleDTO {
	matches := make([]matchDTO, 0, len(v.Matches))
	for _, m := range v.Matches {
		matches = append(matches, matchToDTO(m))
	}
	calendar := make([]calendarEntryDTO, 0, len(v.Calendar))
	for _, c := range v.Calendar {
		calendar = append(calendar, calendarEntryDTO{Date: c.Date, Sport: c.Sport, LeagueID: c.LeagueID})
	}

	return scheduleDTO{Matches: matches, Calendar: calendar}
}

func matchDetailToDTO(v *match.MatchDetail) matchDetailDTO {
	out := matchDetailDTO{
		matchDTO:       matchToDTO(v.Match),
		Events:         make([]matchEventDTO, 0, len(v.Events)),
		Stats:          make([]matchStatDTO, 0, len(v.Stats)),
		HomePlayers:    playerStatsToDTO(v.HomePlayers),
		AwayPlayers:    playerStatsToDTO(v.AwayPlayers),
		Drives:         make([]driveDTO, 0, len(v.Drives)),
		ScoringPlays:   make([]scoringPlayDTO, 0, len(v.ScoringPlays)),
		WinProbability: make([]winProbabilityDTO, 0, len(v.WinProbability)),
	}

	for _, e := range v.Events {
		participants := make([]participantDTO, 0, len(e.Participants))
		for _, p := range e.Participants {
			participants = append(participants, participantDTO{Name: p.Name, Role: p.Role})
		}
		out.Events = append(out.Events, matchEventDTO{
			ID:           e.ID,
			Type:         e.Type,
			Description:  e.Description,
			Clock:        e.Clock,
			TeamID:       e.TeamID,
			PlayerName:   e.PlayerName,
			AssistName:   e.AssistName,
			Participants: participants,
		})
	}
	for _, s := range v.Stats {
		out.Stats = append(out.Stats, matchStatDTO{
			Name:         s.Name,
			Label:        s.Label,
			HomeValue:    s.HomeValue,
			AwayValue:    s.AwayValue,
			IsPercentage: s.IsPercentage,
		})
	}
	for _, d := range v.Drives {
		out.Drives = append(out.Drives, driveDTO{
			ID:          d.ID,
			Description: d.Description,
			Result:      d.Result,
			TeamID:      d.TeamID,
			Plays:       d.Plays,
			Yards:       d.Yards,
			TimeElapsed: d.TimeElapsed,
		})
	}
	for _, p := range v.ScoringPlays {
		out.ScoringPlays = append(out.ScoringPlays, scoringPlayDTO{
			ID:          p.ID,
			Type:        p.Type,
			Description: p.Description,
			Period:      p.Period,
			Clock:       p.Clock,
			TeamID:      p.TeamID,
			HomeScore:   p.HomeScore,
			AwayScore:   p.AwayScore,
		})
	}
	for _, w := range v.WinProbability {
		out.WinProbability = append(out.WinProbability, winProbabilityDTO{
			PlayID:         w.PlayID,
			HomeWinPercent: w.HomeWinPercent,
			TieWinPercent:  w.TieWinPercent,
		})
	}
	if v.GameInfo != nil {
		officials := append(make([]string, 0, len(v.GameInfo.Officials)), v.GameInfo.Officials...)
		out.GameInfo = &gameInfoDTO{
			Venue:      v.GameInfo.Venue,
			City:       v.GameInfo.City,
			Attendance: v.GameInfo.Attendance,
			Officials:  officials,
		}
	}

	return out
}

func playerStatsToDTO(players []match.PlayerStat) []playerStatDTO {
	out := make([]playerStatDTO, 0, len(players))
	for _, p := range players {
		stats := p.Stats
		if stats == nil {
			stats = map[string]string{}
		}
		out = append(out, playerStatDTO{
			ID:           p.ID,
			Name:         p.Name,
			Position:     p.Position,
			PositionName: p.PositionName,
			Jersey:       p.Jersey,
			HeadshotURL:  p.Headshot,
			Stats:        stats,
			Starter:      p.Starter,
			Category:     p.Category,
			Active:       p.Active,
			SubbedIn:     p.SubbedIn,
			SubbedOut:    p.SubbedOut,
		})
	}
	return out
}

func standingToDTO(v standing.Entry) standingDTO {
	s := v.Stats
	return standingDTO{
		Group: v.Group,
		Team:  teamToDTO(v.Team),
		Rank:  v.Rank,
		Stats: standingStatsDTO{
			Wins:           s.Wins,
			Losses:         s.Losses,
			Ties:           s.Ties,
			Draws:          s.Draws,
			GamesPlayed:    s.GamesPlayed,
			WinPercent:     s.WinPercent,
			GamesBehind:    s.GamesBehind,
			PointsFor:      s.PointsFor,
			PointsAgainst:  s.PointsAgainst,
			Differential:   s.Differential,
			Streak:         s.Streak,
			Points:         s.Points,
			GoalDifference: s.GoalDifference,
		},
	}
}

func leaderCategoryToDTO(v leader.Category) leaderCategoryDTO {
	leaders := make([]leaderDTO, 0, len(v.Leaders))
	for _, l := range v.Leaders {
		leaders = append(leaders, leaderDTO{
			ID:           l.ID,
			Name:         l.Name,
			Team:         l.Team,
			TeamLogoURL:  l.TeamLogo,
			HeadshotURL:  l.Headshot,
			Value:        l.Value,
			DisplayValue: l.DisplayValue,
			Rank:         l.Rank,
			Kind:         string(l.Kind),
		})
	}

	return leaderCategoryDTO{Name: v.Name, DisplayName: v.DisplayName, Leaders: leaders}
}

func articleToDTO(v news.Article) articleDTO {
	images := append(make([]string, 0, len(v.Images)), v.Images...)
	return articleDTO{
		Headline:    v.Headline,
		Description: v.Description,
		PublishedAt: formatTime(v.Published),
		Link:        v.Link,
		Images:      images,
		LeagueID:    v.LeagueID,
	}
}

func formatTime(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}
