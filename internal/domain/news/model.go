package news

import "time"

type Article struct {
	Headline    string
	Description string
	Published   time.Time
	Link        string
	Images      []string
	LeagueID    string
}
