package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/riskibarqy/scoreboard/internal/domain/league"
	"github.com/riskibarqy/scoreboard/internal/domain/news"
	"github.com/riskibarqy/scoreboard/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

type NewsServiceConfig struct {
	TopLeagues []string
	Limit      int
}

type NewsService struct {
	leagueRepo league.Repository
	provider   SportsDataProvider
	topLeagues []string
	limit      int
	logger     *logging.Logger
}

func NewNewsService(leagueRepo league.Repository, provider SportsDataProvider, cfg NewsServiceConfig, logger *logging.Logger) *NewsService {
	if logger == nil {
		logger = logging.Default()
	}
	return &NewsService{
		leagueRepo: leagueRepo,
		provider:   provider,
		topLeagues: append([]string(nil), cfg.TopLeagues...),
		limit:      cfg.Limit,
		logger:     logger,
	}
}

// GetNews returns league headlines, optionally scoped to one match. The top
// pseudo-league merges the configured leagues newest first and ignores matchID.
func (s *NewsService) GetNews(ctx context.Context, leagueID, matchID string) ([]news.Article, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.GetNews", leagueAttr(leagueID), attribute.String("scoreboard.match_id", matchID))
	defer span.End()

	if isTopLeague(leagueID) {
		return s.getTopNews(ctx), nil
	}

	lg, err := resolveLeague(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return nil, err
	}
	return s.fetchNews(ctx, lg, strings.TrimSpace(matchID)), nil
}

func (s *NewsService) getTopNews(ctx context.Context) []news.Article {
	leagues := resolveRoster(ctx, s.leagueRepo, s.topLeagues, s.logger)

	perLeague, recovered := fanOut(leagues, func(lg *league.League) []news.Article {
		return s.fetchNews(ctx, *lg, "")
	})
	if recovered != nil {
		s.logger.ErrorContext(ctx, "top news fan-out panicked", "panic", recovered.String())
		return []news.Article{}
	}

	return mergeNews(perLeague)
}

func (s *NewsService) fetchNews(ctx context.Context, lg league.League, matchID string) []news.Article {
	articles, err := s.provider.FetchNews(ctx, lg, matchID, s.limit)
	if err != nil {
		s.logger.WarnContext(ctx, "news fetch failed", "league_id", lg.ID, "match_id", matchID, "error", err)
		return []news.Article{}
	}
	return articles
}

func mergeNews(perLeague [][]news.Article) []news.Article {
	out := make([]news.Article, 0)
	for _, articles := range perLeague {
		out = append(out, articles...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Published.After(out[j].Published)
	})
	return out
}
