package match

import (
	"strings"
	"time"
)

type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusLive      Status = "LIVE"
	StatusHalftime  Status = "HALFTIME"
	StatusFinished  Status = "FINISHED"
)

var statusByState = map[string]Status{
	"pre":      StatusScheduled,
	"in":       StatusLive,
	"post":     StatusFinished,
	"halftime": StatusHalftime,
}

// StatusFromState maps the upstream state tag. Unknown tags are SCHEDULED.
func StatusFromState(state string) Status {
	if status, ok := statusByState[strings.ToLower(strings.TrimSpace(state))]; ok {
		return status
	}
	return StatusScheduled
}

type LineScore struct {
	Period int
	Value  string
}

type Team struct {
	ID         string
	Name       string
	ShortName  string
	Logo       string
	Record     string
	LineScores []LineScore
}

// Match is one fixture as shown on a scoreboard.
type Match struct {
	ID           string
	LeagueID     string
	Home         Team
	Away         Team
	HomeScore    int
	AwayScore    int
	Status       Status
	Clock        string
	Period       int
	StatusDetail string
	StartTime    time.Time
	Venue        string
}

func (m Match) IsLive() bool {
	return m.Status == StatusLive
}

type Participant struct {
	Name string
	Role string
}

type MatchEvent struct {
	ID           string
	Type         string
	Description  string
	Clock        string
	TeamID       string
	PlayerName   string
	AssistName   string
	Participants []Participant
}

type MatchStat struct {
	Name         string
	Label        string
	HomeValue    string
	AwayValue    string
	IsPercentage bool
}

// PlayerStat is one athlete row of a boxscore. Stats keys depend on the sport
// and category; a missing key means no value was reported.
type PlayerStat struct {
	ID           string
	Name         string
	Position     string
	PositionName string
	Jersey       string
	Headshot     string
	Stats        map[string]string
	Starter      bool
	Category     string
	Active       bool
	SubbedIn     bool
	SubbedOut    bool
}

type Drive struct {
	ID          string
	Description string
	Result      string
	TeamID      string
	Plays       int
	Yards       int
	TimeElapsed string
}

type ScoringPlay struct {
	ID          string
	Type        string
	Description string
	Period      int
	Clock       string
	TeamID      string
	HomeScore   int
	AwayScore   int
}

type WinProbabilitySample struct {
	PlayID         string
	HomeWinPercent float64
	TieWinPercent  float64
}

type GameInfo struct {
	Venue      string
	City       string
	Attendance int
	Officials  []string
}

type MatchDetail struct {
	Match
	Events         []MatchEvent
	Stats          []MatchStat
	HomePlayers    []PlayerStat
	AwayPlayers    []PlayerStat
	Drives         []Drive
	ScoringPlays   []ScoringPlay
	WinProbability []WinProbabilitySample
	GameInfo       *GameInfo
}

// CalendarEntry marks a date with at least one scheduled game.
type CalendarEntry struct {
	Date     string
	Sport    string
	LeagueID string
}

type Schedule struct {
	Matches  []Match
	Calendar []CalendarEntry
}
