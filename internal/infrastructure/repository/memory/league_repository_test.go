package memory

import (
	"context"
	"testing"

	"github.com/riskibarqy/scoreboard/internal/domain/league"
)

func TestSeedLeagues_AreValidAndResolveTopRosters(t *testing.T) {
	t.Parallel()

	repo, err := NewLeagueRepository(SeedLeagues())
	if err != nil {
		t.Fatalf("build seed repository: %v", err)
	}

	for _, id := range append(DefaultTopMatchLeagues(), DefaultTopNewsLeagues()...) {
		if _, ok, _ := repo.GetByID(context.Background(), id); !ok {
			t.Fatalf("top roster league %q missing from seed catalog", id)
		}
	}
}

func TestLeagueRepository_ListKeepsOrderAndGetIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	repo, err := NewLeagueRepository([]league.League{
		{ID: "nfl", Name: "NFL", Sport: "football", Slug: "nfl", Family: league.FamilyFootball},
		{ID: "eng.1", Name: "Premier League", Sport: "soccer", Slug: "eng.1", Family: league.FamilySoccer},
	})
	if err != nil {
		t.Fatalf("build repository: %v", err)
	}

	items, _ := repo.List(context.Background())
	if len(items) != 2 || items[0].ID != "nfl" || items[1].ID != "eng.1" {
		t.Fatalf("unexpected list order: %+v", items)
	}
	if got, ok, _ := repo.GetByID(context.Background(), " ENG.1 "); !ok || got.Name != "Premier League" {
		t.Fatalf("expected case-insensitive lookup, got=%+v ok=%v", got, ok)
	}
	if _, ok, _ := repo.GetByID(context.Background(), "top"); ok {
		t.Fatalf("expected top to be absent from the catalog")
	}
}

func TestNewLeagueRepository_RejectsInvalidCatalog(t *testing.T) {
	t.Parallel()

	valid := league.League{ID: "nba", Name: "NBA", Sport: "basketball", Slug: "nba", Family: league.FamilyBasketball}
	if _, err := NewLeagueRepository([]league.League{valid, valid}); err == nil {
		t.Fatalf("expected duplicate id error")
	}

	reserved := valid
	reserved.ID = league.TopID
	if _, err := NewLeagueRepository([]league.League{reserved}); err == nil {
		t.Fatalf("expected reserved id error")
	}
}
