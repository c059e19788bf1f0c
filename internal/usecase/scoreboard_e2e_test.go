package usecase_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/scoreboard/external/espn"
	"github.com/riskibarqy/scoreboard/internal/domain/match"
	"github.com/riskibarqy/scoreboard/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/scoreboard/internal/platform/logging"
	"github.com/riskibarqy/scoreboard/internal/platform/resilience"
	"github.com/riskibarqy/scoreboard/internal/usecase"
)

func TestMatchService_EndToEnd_NBALiveGame(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/apis/site/v2/sports/basketball/nba/scoreboard" {
			http.NotFound(w, r)
			return
		}

		events := []any{}
		if r.URL.Query().Get("dates") == "20240315" {
			events = append(events, map[string]any{
				"id":   "401585601",
				"date": "2024-03-15T23:30Z",
				"competitions": []any{map[string]any{
					"status": map[string]any{
						"displayClock": "4:12",
						"period":       3,
						"type":         map[string]any{"name": "STATUS_IN_PROGRESS", "state": "in", "shortDetail": "4:12 - 3rd"},
					},
					"competitors": []any{
						map[string]any{"homeAway": "home", "score": "88", "team": map[string]any{"id": "18", "shortDisplayName": "Knicks"}},
						map[string]any{"homeAway": "away", "score": "84", "team": map[string]any{"id": "2", "shortDisplayName": "Celtics"}},
					},
				}},
			})
		}
		_ = jsoniter.NewEncoder(w).Encode(map[string]any{"events": events})
	}))
	defer srv.Close()

	repo, err := memory.NewLeagueRepository(memory.SeedLeagues())
	if err != nil {
		t.Fatalf("build league repository: %v", err)
	}
	client := espn.NewClient(espn.ClientConfig{
		HTTPClient:     srv.Client(),
		BaseURL:        srv.URL,
		Logger:         logging.NewNop(),
		CircuitBreaker: resilience.CircuitBreakerConfig{Enabled: false},
	})
	service := usecase.NewMatchService(repo, client, nil, nil, usecase.MatchServiceConfig{}, logging.NewNop())

	got, err := service.GetMatches(context.Background(), "nba", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("get matches: %v", err)
	}
	if len(got.Matches) != 1 {
		t.Fatalf("expected one match, got=%d", len(got.Matches))
	}

	m := got.Matches[0]
	if m.Status != match.StatusLive || m.HomeScore != 88 || m.AwayScore != 84 {
		t.Fatalf("unexpected match: status=%s score=%d-%d", m.Status, m.HomeScore, m.AwayScore)
	}
	if m.Home.Name != "Knicks" || m.Away.Name != "Celtics" || m.Period != 3 {
		t.Fatalf("unexpected match details: %+v", m)
	}
}
