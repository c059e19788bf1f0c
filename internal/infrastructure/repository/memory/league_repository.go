package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/riskibarqy/scoreboard/internal/domain/league"
)

// LeagueRepository is the read-only league catalog, kept in catalog order.
type LeagueRepository struct {
	mu     sync.RWMutex
	items  map[string]league.League
	orders []string
}

func NewLeagueRepository(leagues []league.League) (*LeagueRepository, error) {
	items := make(map[string]league.League, len(leagues))
	orders := make([]string, 0, len(leagues))

	for _, l := range leagues {
		if err := l.Validate(); err != nil {
			return nil, fmt.Errorf("league %q: %w", l.ID, err)
		}
		if _, dup := items[l.ID]; dup {
			return nil, fmt.Errorf("duplicate league id %q", l.ID)
		}
		items[l.ID] = l
		orders = append(orders, l.ID)
	}

	return &LeagueRepository{
		items:  items,
		orders: orders,
	}, nil
}

func (r *LeagueRepository) List(_ context.Context) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.League, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}
	return out, nil
}

// GetByID matches ids case-insensitively; catalog ids are lower case.
func (r *LeagueRepository) GetByID(_ context.Context, leagueID string) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.items[strings.ToLower(strings.TrimSpace(leagueID))]
	return l, ok, nil
}
