package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/scoreboard/internal/domain/league"
	"github.com/riskibarqy/scoreboard/internal/platform/logging"
)

type LeagueService struct {
	leagueRepo league.Repository
}

func NewLeagueService(leagueRepo league.Repository) *LeagueService {
	return &LeagueService{leagueRepo: leagueRepo}
}

func (s *LeagueService) ListLeagues(ctx context.Context) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListLeagues")
	defer span.End()

	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}
	return leagues, nil
}

// resolveLeague looks up a concrete league. The top pseudo-league is rejected;
// callers that support it branch before calling.
func resolveLeague(ctx context.Context, repo league.Repository, leagueID string) (league.League, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return league.League{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	if isTopLeague(leagueID) {
		return league.League{}, fmt.Errorf("%w: league %q is not supported here", ErrInvalidInput, league.TopID)
	}

	lg, exists, err := repo.GetByID(ctx, leagueID)
	if err != nil {
		return league.League{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return league.League{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}
	return lg, nil
}

// resolveRoster maps configured league ids to catalog entries, skipping ids
// the catalog does not know.
func resolveRoster(ctx context.Context, repo league.Repository, ids []string, logger *logging.Logger) []league.League {
	out := make([]league.League, 0, len(ids))
	for _, id := range ids {
		lg, exists, err := repo.GetByID(ctx, id)
		if err != nil {
			logger.WarnContext(ctx, "resolve top league failed", "league_id", id, "error", err)
			continue
		}
		if !exists {
			logger.WarnContext(ctx, "top league missing from catalog", "league_id", id)
			continue
		}
		out = append(out, lg)
	}
	return out
}

// isTopLeague reports whether id names the top pseudo-league. Catalog lookups
// ignore case, so this does too.
func isTopLeague(id string) bool {
	return strings.EqualFold(strings.TrimSpace(id), league.TopID)
}
