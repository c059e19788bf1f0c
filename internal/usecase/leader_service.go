package usecase

import (
	"context"

	"github.com/riskibarqy/scoreboard/internal/domain/leader"
	"github.com/riskibarqy/scoreboard/internal/domain/league"
	"github.com/riskibarqy/scoreboard/internal/platform/logging"
)

type LeaderService struct {
	leagueRepo league.Repository
	provider   SportsDataProvider
	logger     *logging.Logger
}

func NewLeaderService(leagueRepo league.Repository, provider SportsDataProvider, logger *logging.Logger) *LeaderService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LeaderService{leagueRepo: leagueRepo, provider: provider, logger: logger}
}

func (s *LeaderService) GetPlayerLeaders(ctx context.Context, leagueID string) ([]leader.Category, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderService.GetPlayerLeaders", leagueAttr(leagueID))
	defer span.End()

	lg, err := resolveLeague(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return nil, err
	}

	categories, err := s.provider.FetchLeaders(ctx, lg)
	if err != nil {
		s.logger.WarnContext(ctx, "leaders fetch failed", "league_id", lg.ID, "error", err)
		return []leader.Category{}, nil
	}
	return categories, nil
}
