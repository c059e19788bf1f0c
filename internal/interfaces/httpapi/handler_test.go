package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/scoreboard/internal/domain/league"
	"github.com/riskibarqy/scoreboard/internal/domain/match"
	"github.com/riskibarqy/scoreboard/internal/domain/news"
	"github.com/riskibarqy/scoreboard/internal/infrastructure/repository/memory"
	usecasemock "github.com/riskibarqy/scoreboard/internal/mocks/usecase"
	"github.com/riskibarqy/scoreboard/internal/platform/logging"
	"github.com/riskibarqy/scoreboard/internal/usecase"
	"github.com/stretchr/testify/mock"
)

type envelope struct {
	APIVersion string              `json:"apiVersion"`
	Data       jsoniter.RawMessage `json:"data"`
	Error      *struct {
		Code   int    `json:"code"`
		Status string `json:"status"`
	} `json:"error"`
}

func newTestRouter(t *testing.T, provider *usecasemock.SportsDataProvider) (http.Handler, *Handler) {
	t.Helper()

	repo, err := memory.NewLeagueRepository(memory.SeedLeagues())
	if err != nil {
		t.Fatalf("build league repository: %v", err)
	}
	logger := logging.NewNop()

	handler := NewHandler(
		usecase.NewLeagueService(repo),
		usecase.NewMatchService(repo, provider, nil, nil, usecase.MatchServiceConfig{TopLeagues: memory.DefaultTopMatchLeagues()}, logger),
		usecase.NewStandingService(repo, provider, logger),
		usecase.NewLeaderService(repo, provider, logger),
		usecase.NewNewsService(repo, provider, usecase.NewsServiceConfig{TopLeagues: memory.DefaultTopNewsLeagues(), Limit: 20}, logger),
		logger,
	)
	return NewRouter(handler, logger, true, []string{"*"}), handler
}

func serve(t *testing.T, router http.Handler, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	var body envelope
	if err := jsoniter.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %s: %v (body=%s)", target, err, rec.Body.String())
	}
	return rec, body
}

func TestHandler_ListLeagues(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, usecasemock.NewSportsDataProvider(t))
	rec, body := serve(t, router, "/v1/leagues")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var leagues []leagueDTO
	if err := jsoniter.Unmarshal(body.Data, &leagues); err != nil {
		t.Fatalf("decode leagues: %v", err)
	}
	if len(leagues) != len(memory.SeedLeagues()) || leagues[0].ID != "nba" {
		t.Fatalf("unexpected leagues: %+v", leagues)
	}
}

func TestHandler_ListMatches(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewSportsDataProvider(t)
	live := match.Match{
		ID:        "401585601",
		LeagueID:  "nba",
		Home:      match.Team{ID: "18", Name: "Knicks"},
		Away:      match.Team{ID: "2", Name: "Celtics"},
		HomeScore: 88,
		AwayScore: 84,
		Status:    match.StatusLive,
		StartTime: time.Date(2024, 3, 15, 23, 30, 0, 0, time.UTC),
	}
	provider.On("FetchScoreboard", mock.Anything, mock.MatchedBy(func(lg league.League) bool { return lg.ID == "nba" }), mock.Anything).
		Return(match.Schedule{Matches: []match.Match{live}}, nil).Times(2)

	router, _ := newTestRouter(t, provider)
	rec, body := serve(t, router, "/v1/leagues/nba/matches?date=2024-03-15&tz=America/New_York")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var schedule scheduleDTO
	if err := jsoniter.Unmarshal(body.Data, &schedule); err != nil {
		t.Fatalf("decode schedule: %v", err)
	}
	if len(schedule.Matches) != 1 {
		t.Fatalf("expected duplicate days to collapse to one match, got=%d", len(schedule.Matches))
	}
	got := schedule.Matches[0]
	if got.Status != "LIVE" || got.HomeScore != 88 || got.StartTime != "2024-03-15T23:30:00Z" {
		t.Fatalf("unexpected match: %+v", got)
	}
	if got.HomeTeam.LineScores == nil || schedule.Calendar == nil {
		t.Fatalf("expected empty arrays instead of null")
	}
}

func TestHandler_ListMatches_InvalidQuery(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, usecasemock.NewSportsDataProvider(t))
	for _, target := range []string{
		"/v1/leagues/nba/matches?date=2024-13-01",
		"/v1/leagues/nba/matches?date=15-03-2024",
		"/v1/leagues/nba/matches?tz=Mars/Olympus",
	} {
		rec, body := serve(t, router, target)
		if rec.Code != http.StatusBadRequest || body.Error == nil || body.Error.Status != "INVALID_ARGUMENT" {
			t.Fatalf("expected 400 for %s, got %d %s", target, rec.Code, rec.Body.String())
		}
	}
}

func TestHandler_UnknownLeague(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, usecasemock.NewSportsDataProvider(t))
	rec, body := serve(t, router, "/v1/leagues/cricket/standings")
	if rec.Code != http.StatusNotFound || body.Error == nil || body.Error.Status != "NOT_FOUND" {
		t.Fatalf("expected 404, got %d %s", rec.Code, rec.Body.String())
	}
}

func TestHandler_TopRejectedForSingleLeagueRoutes(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, usecasemock.NewSportsDataProvider(t))
	for _, target := range []string{
		"/v1/leagues/top/standings",
		"/v1/leagues/top/leaders",
		"/v1/leagues/top/matches/401585601",
	} {
		rec, _ := serve(t, router, target)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %d", target, rec.Code)
		}
	}
}

func TestHandler_GetMatchDetail_NoSummary(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewSportsDataProvider(t)
	provider.On("FetchMatchDetail", mock.Anything, mock.Anything, "704512").Return(nil, nil).Once()

	router, _ := newTestRouter(t, provider)
	rec, body := serve(t, router, "/v1/leagues/eng.1/matches/704512")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(body.Data) != 0 || body.Error != nil {
		t.Fatalf("expected no data and no error, got %s", rec.Body.String())
	}
}

func TestHandler_ListNews_ForwardsMatchID(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewSportsDataProvider(t)
	provider.On("FetchNews", mock.Anything, mock.MatchedBy(func(lg league.League) bool { return lg.ID == "eng.1" }), "704512", 20).
		Return([]news.Article{{Headline: "Match report", LeagueID: "eng.1"}}, nil).Once()

	router, _ := newTestRouter(t, provider)
	rec, body := serve(t, router, "/v1/leagues/eng.1/news?match_id=704512")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var articles []articleDTO
	if err := jsoniter.Unmarshal(body.Data, &articles); err != nil {
		t.Fatalf("decode articles: %v", err)
	}
	if len(articles) != 1 || articles[0].Images == nil || articles[0].PublishedAt != "" {
		t.Fatalf("unexpected articles: %+v", articles)
	}
}

func TestHandler_StandingsDegradeToEmpty(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewSportsDataProvider(t)
	provider.On("FetchStandings", mock.Anything, mock.Anything).Return(nil, usecase.ErrDependencyUnavailable).Once()

	router, _ := newTestRouter(t, provider)
	rec, body := serve(t, router, "/v1/leagues/nba/standings")
	if rec.Code != http.StatusOK || string(body.Data) != "[]" {
		t.Fatalf("expected 200 with empty list, got %d %s", rec.Code, rec.Body.String())
	}
}

func TestHandler_RecoversPanic(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewSportsDataProvider(t)
	provider.On("FetchLeaders", mock.Anything, mock.Anything).Panic("boom").Once()

	router, _ := newTestRouter(t, provider)
	rec, body := serve(t, router, "/v1/leagues/nba/leaders")
	if rec.Code != http.StatusInternalServerError || body.Error == nil || body.Error.Status != "INTERNAL" {
		t.Fatalf("expected 500, got %d %s", rec.Code, rec.Body.String())
	}
}

func TestHandler_ResolveDate_DefaultsToTodayInZone(t *testing.T) {
	t.Parallel()

	_, handler := newTestRouter(t, usecasemock.NewSportsDataProvider(t))
	handler.now = func() time.Time { return time.Date(2024, 3, 15, 2, 0, 0, 0, time.UTC) }

	got, err := handler.resolveDate(matchesQuery{Timezone: "America/Los_Angeles"})
	if err != nil {
		t.Fatalf("resolve date: %v", err)
	}
	if got.Format(time.DateOnly) != "2024-03-14" || got.Location().String() != "America/Los_Angeles" {
		t.Fatalf("unexpected date: %s", got)
	}

	got, err = handler.resolveDate(matchesQuery{Date: "2024-03-15"})
	if err != nil {
		t.Fatalf("resolve date: %v", err)
	}
	if got.Location() != time.UTC || got.Day() != 15 {
		t.Fatalf("expected UTC date, got %s", got)
	}
}

func TestHandler_SwaggerRoutes(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, usecasemock.NewSportsDataProvider(t))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil))
	if rec.Code != http.StatusOK || rec.Body.Len() == 0 {
		t.Fatalf("expected openapi document, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "url: '/openapi.yaml'") {
		t.Fatalf("expected swagger page pointing at the document, got %d", rec.Code)
	}
}
