package usecase

import (
	"context"

	"github.com/riskibarqy/scoreboard/internal/domain/league"
	"github.com/riskibarqy/scoreboard/internal/domain/standing"
	"github.com/riskibarqy/scoreboard/internal/platform/logging"
)

type StandingService struct {
	leagueRepo league.Repository
	provider   SportsDataProvider
	logger     *logging.Logger
}

func NewStandingService(leagueRepo league.Repository, provider SportsDataProvider, logger *logging.Logger) *StandingService {
	if logger == nil {
		logger = logging.Default()
	}
	return &StandingService{leagueRepo: leagueRepo, provider: provider, logger: logger}
}

// GetStandings returns the flattened table. Upstream failures yield an empty table.
func (s *StandingService) GetStandings(ctx context.Context, leagueID string) ([]standing.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.GetStandings", leagueAttr(leagueID))
	defer span.End()

	lg, err := resolveLeague(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return nil, err
	}

	entries, err := s.provider.FetchStandings(ctx, lg)
	if err != nil {
		s.logger.WarnContext(ctx, "standings fetch failed", "league_id", lg.ID, "error", err)
		return []standing.Entry{}, nil
	}
	return entries, nil
}
