// Package catalog loads the league catalog and top rosters from a YAML file.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/riskibarqy/scoreboard/internal/domain/league"
	"gopkg.in/yaml.v3"
)

type Catalog struct {
	Leagues         []league.League
	TopMatchLeagues []string
	TopNewsLeagues  []string
}

type fileLeague struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Sport    string `yaml:"sport"`
	Slug     string `yaml:"slug"`
	Family   string `yaml:"family"`
	Timezone string `yaml:"timezone"`
}

type fileCatalog struct {
	Leagues []fileLeague `yaml:"leagues"`
	Top     struct {
		Matches []string `yaml:"matches"`
		News    []string `yaml:"news"`
	} `yaml:"top"`
}

func Load(path string) (Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read league catalog: %w", err)
	}
	return Parse(raw)
}

// Parse decodes and validates a catalog document. Slug defaults to the id and
// ids are lower-cased. Top rosters may only name leagues the file declares.
func Parse(raw []byte) (Catalog, error) {
	var doc fileCatalog
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Catalog{}, fmt.Errorf("parse league catalog: %w", err)
	}
	if len(doc.Leagues) == 0 {
		return Catalog{}, errors.New("league catalog declares no leagues")
	}

	out := Catalog{Leagues: make([]league.League, 0, len(doc.Leagues))}
	known := make(map[string]struct{}, len(doc.Leagues))
	for i, item := range doc.Leagues {
		lg, err := item.toLeague()
		if err != nil {
			return Catalog{}, fmt.Errorf("league #%d: %w", i+1, err)
		}
		if _, dup := known[lg.ID]; dup {
			return Catalog{}, fmt.Errorf("league #%d: duplicate id %q", i+1, lg.ID)
		}
		known[lg.ID] = struct{}{}
		out.Leagues = append(out.Leagues, lg)
	}

	var err error
	if out.TopMatchLeagues, err = roster("top.matches", doc.Top.Matches, known); err != nil {
		return Catalog{}, err
	}
	if out.TopNewsLeagues, err = roster("top.news", doc.Top.News, known); err != nil {
		return Catalog{}, err
	}
	return out, nil
}

func (f fileLeague) toLeague() (league.League, error) {
	family, err := league.ParseFamily(f.Family)
	if err != nil {
		return league.League{}, err
	}

	lg := league.League{
		ID:       strings.ToLower(strings.TrimSpace(f.ID)),
		Name:     strings.TrimSpace(f.Name),
		Sport:    strings.TrimSpace(f.Sport),
		Slug:     strings.TrimSpace(f.Slug),
		Family:   family,
		Timezone: strings.TrimSpace(f.Timezone),
	}
	if lg.Slug == "" {
		lg.Slug = lg.ID
	}
	if lg.Sport == "" {
		lg.Sport = string(family)
	}
	if lg.Timezone != "" {
		if _, err := time.LoadLocation(lg.Timezone); err != nil {
			return league.League{}, fmt.Errorf("timezone %q: %w", lg.Timezone, err)
		}
	}
	if err := lg.Validate(); err != nil {
		return league.League{}, err
	}
	return lg, nil
}

func roster(field string, ids []string, known map[string]struct{}) ([]string, error) {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.ToLower(strings.TrimSpace(id))
		if id == "" {
			continue
		}
		if _, ok := known[id]; !ok {
			return nil, fmt.Errorf("%s references unknown league %q", field, id)
		}
		out = append(out, id)
	}
	return out, nil
}
