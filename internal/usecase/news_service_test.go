package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/scoreboard/internal/domain/league"
	"github.com/riskibarqy/scoreboard/internal/domain/news"
	usecasemock "github.com/riskibarqy/scoreboard/internal/mocks/usecase"
	"github.com/riskibarqy/scoreboard/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

func article(leagueID, headline string, published time.Time) news.Article {
	return news.Article{Headline: headline, LeagueID: leagueID, Published: published}
}

func TestNewsService_GetNews_TopPartialFailure(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewSportsDataProvider(t)
	repo := newCatalogRepo(t, nbaLeague, nflLeague, eplLeague, laligaLeague, uclLeague)
	service := NewNewsService(repo, provider, NewsServiceConfig{
		TopLeagues: []string{"nba", "nfl", "eng.1", "esp.1", "uefa.champions"},
		Limit:      10,
	}, logging.NewNop())

	base := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	provider.On("FetchNews", mock.Anything, nbaLeague, "", 10).Return([]news.Article{
		article("nba", "nba-1", base.Add(3*time.Hour)),
		article("nba", "nba-2", base.Add(-time.Hour)),
	}, nil).Once()
	provider.On("FetchNews", mock.Anything, nflLeague, "", 10).Return(nil, errUpstream).Once()
	provider.On("FetchNews", mock.Anything, eplLeague, "", 10).Return([]news.Article{
		article("eng.1", "epl-1", base.Add(time.Hour)),
	}, nil).Once()
	provider.On("FetchNews", mock.Anything, laligaLeague, "", 10).Return([]news.Article{
		article("esp.1", "liga-1", base.Add(5*time.Hour)),
	}, nil).Once()
	provider.On("FetchNews", mock.Anything, uclLeague, "", 10).Return([]news.Article{
		article("uefa.champions", "ucl-1", base),
	}, nil).Once()

	got, err := service.GetNews(context.Background(), league.TopID, "ignored")
	if err != nil {
		t.Fatalf("expected no error on partial failure, got %v", err)
	}

	want := []string{"liga-1", "nba-1", "epl-1", "ucl-1", "nba-2"}
	if len(got) != len(want) {
		t.Fatalf("unexpected article count: got=%d want=%d", len(got), len(want))
	}
	for i := range want {
		if got[i].Headline != want[i] {
			t.Fatalf("unexpected order at %d: got=%s want=%s", i, got[i].Headline, want[i])
		}
	}
}

func TestNewsService_GetNews_SingleLeagueWithMatch(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewSportsDataProvider(t)
	service := NewNewsService(newCatalogRepo(t, eplLeague), provider, NewsServiceConfig{}, logging.NewNop())

	provider.On("FetchNews", mock.Anything, eplLeague, "704512", 0).Return([]news.Article{
		article("eng.1", "older first", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
		article("eng.1", "newer second", time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)),
	}, nil).Once()

	got, err := service.GetNews(context.Background(), "eng.1", " 704512 ")
	if err != nil {
		t.Fatalf("get news: %v", err)
	}
	if len(got) != 2 || got[0].Headline != "older first" {
		t.Fatalf("expected upstream order for a single league, got %+v", got)
	}
}

func TestNewsService_GetNews_Errors(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewSportsDataProvider(t)
	service := NewNewsService(newCatalogRepo(t, eplLeague), provider, NewsServiceConfig{}, logging.NewNop())

	if _, err := service.GetNews(context.Background(), "", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := service.GetNews(context.Background(), "mlb", ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	provider.On("FetchNews", mock.Anything, eplLeague, "", 0).Return(nil, errUpstream).Once()
	got, err := service.GetNews(context.Background(), "eng.1", "")
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("expected empty list on upstream failure, got=%v err=%v", got, err)
	}
}
