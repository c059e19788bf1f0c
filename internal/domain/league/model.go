package league

import (
	"fmt"
	"strings"
)

// TopID is the pseudo-league that fans out across the configured top leagues.
const TopID = "top"

// Family selects which upstream shape and field fallbacks apply to a league.
type Family string

const (
	FamilyBasketball Family = "basketball"
	FamilyFootball   Family = "football"
	FamilySoccer     Family = "soccer"
)

func ParseFamily(raw string) (Family, error) {
	switch Family(strings.ToLower(strings.TrimSpace(raw))) {
	case FamilyBasketball:
		return FamilyBasketball, nil
	case FamilyFootball:
		return FamilyFootball, nil
	case FamilySoccer:
		return FamilySoccer, nil
	default:
		return "", fmt.Errorf("unknown league family %q", raw)
	}
}

// RanksByWinPercent reports whether standings without explicit ranks order by
// win percentage rather than table points.
func (f Family) RanksByWinPercent() bool {
	return f == FamilyBasketball || f == FamilyFootball
}

// League is one competition served by the upstream provider.
type League struct {
	ID       string
	Name     string
	Sport    string
	Slug     string
	Family   Family
	Timezone string
}

func (l League) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("league id is required")
	}
	if l.ID == TopID {
		return fmt.Errorf("league id %q is reserved", TopID)
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}
	if l.Sport == "" {
		return fmt.Errorf("league sport is required")
	}
	if l.Slug == "" {
		return fmt.Errorf("league slug is required")
	}
	if _, err := ParseFamily(string(l.Family)); err != nil {
		return err
	}

	return nil
}
