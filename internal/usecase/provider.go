package usecase

import (
	"context"

	"github.com/riskibarqy/scoreboard/internal/domain/leader"
	"github.com/riskibarqy/scoreboard/internal/domain/league"
	"github.com/riskibarqy/scoreboard/internal/domain/match"
	"github.com/riskibarqy/scoreboard/internal/domain/news"
	"github.com/riskibarqy/scoreboard/internal/domain/standing"
)

// SportsDataProvider is the upstream port. Implementations return normalized
// models and report transport or decode failures as errors; use cases decide
// how to degrade.
type SportsDataProvider interface {
	FetchScoreboard(ctx context.Context, lg league.League, queryDate string) (match.Schedule, error)
	// FetchMatchDetail returns nil, nil when the upstream summary has no competition.
	FetchMatchDetail(ctx context.Context, lg league.League, matchID string) (*match.MatchDetail, error)
	FetchTeamRecord(ctx context.Context, lg league.League, teamID string) (string, error)
	FetchStandings(ctx context.Context, lg league.League) ([]standing.Entry, error)
	FetchLeaders(ctx context.Context, lg league.League) ([]leader.Category, error)
	FetchNews(ctx context.Context, lg league.League, matchID string, limit int) ([]news.Article, error)
}
