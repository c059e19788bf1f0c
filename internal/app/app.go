package app

import (
	"fmt"
	"net/http"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/scoreboard/external/espn"
	"github.com/riskibarqy/scoreboard/internal/config"
	"github.com/riskibarqy/scoreboard/internal/infrastructure/catalog"
	"github.com/riskibarqy/scoreboard/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/scoreboard/internal/interfaces/httpapi"
	"github.com/riskibarqy/scoreboard/internal/platform/cache"
	"github.com/riskibarqy/scoreboard/internal/platform/logging"
	"github.com/riskibarqy/scoreboard/internal/platform/resilience"
	"github.com/riskibarqy/scoreboard/internal/usecase"
)

// NewHTTPServer wires the scoreboard API. The returned release func frees the
// record lookup pool and must run after the server has shut down.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func(), error) {
	if logger == nil {
		logger = logging.Default()
	}

	leagues, err := loadLeagues(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	leagueRepo, err := memory.NewLeagueRepository(leagues.Leagues)
	if err != nil {
		return nil, nil, fmt.Errorf("build league repository: %w", err)
	}

	provider := espn.NewClient(espn.ClientConfig{
		BaseURL: cfg.ESPNBaseURL,
		Timeout: cfg.ESPNTimeout,
		Logger:  logger.Named("espn"),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.ESPNCircuitEnabled,
			FailureThreshold: cfg.ESPNCircuitFailureCount,
			OpenTimeout:      cfg.ESPNCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.ESPNCircuitHalfOpenMaxReq,
		},
	})

	recordPool, err := ants.NewPool(cfg.TeamRecordWorkers, ants.WithNonblocking(true))
	if err != nil {
		return nil, nil, fmt.Errorf("create record lookup pool: %w", err)
	}
	var records *cache.Store[string]
	if cfg.TeamRecordCacheTTL > 0 {
		records = cache.NewStore[string](cfg.TeamRecordCacheTTL)
	}

	leagueSvc := usecase.NewLeagueService(leagueRepo)
	matchSvc := usecase.NewMatchService(leagueRepo, provider, recordPool, records, usecase.MatchServiceConfig{
		TopLeagues:          firstNonEmpty(cfg.TopMatchLeagues, leagues.TopMatchLeagues, memory.DefaultTopMatchLeagues()),
		RecordLookupTimeout: cfg.TeamRecordTimeout,
	}, logger)
	standingSvc := usecase.NewStandingService(leagueRepo, provider, logger)
	leaderSvc := usecase.NewLeaderService(leagueRepo, provider, logger)
	newsSvc := usecase.NewNewsService(leagueRepo, provider, usecase.NewsServiceConfig{
		TopLeagues: firstNonEmpty(cfg.TopNewsLeagues, leagues.TopNewsLeagues, memory.DefaultTopNewsLeagues()),
		Limit:      cfg.NewsLimit,
	}, logger)

	handler := httpapi.NewHandler(leagueSvc, matchSvc, standingSvc, leaderSvc, newsSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		recordPool.Release()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, recordPool.Release, nil
}

// loadLeagues reads the catalog file when configured and falls back to the
// built-in seed otherwise.
func loadLeagues(cfg config.Config, logger *logging.Logger) (catalog.Catalog, error) {
	if cfg.LeagueCatalogPath == "" {
		return catalog.Catalog{Leagues: memory.SeedLeagues()}, nil
	}

	loaded, err := catalog.Load(cfg.LeagueCatalogPath)
	if err != nil {
		return catalog.Catalog{}, fmt.Errorf("load league catalog: %w", err)
	}
	logger.Info("league catalog loaded", "path", cfg.LeagueCatalogPath, "leagues", len(loaded.Leagues))
	return loaded, nil
}

func firstNonEmpty(candidates ...[]string) []string {
	for _, ids := range candidates {
		if len(ids) > 0 {
			return ids
		}
	}
	return nil
}
