// Package catalog loads game data files into the read-only domain catalog.
package catalog

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	domaincatalog "github.com/andrescamacho/studiosim-go/internal/domain/catalog"
	"github.com/andrescamacho/studiosim-go/internal/domain/minigame"
	"github.com/andrescamacho/studiosim-go/internal/domain/progression"
	"github.com/andrescamacho/studiosim-go/internal/domain/scoring"
)

// file is the on-disk layout. Any section left out keeps the built-in data.
type file struct {
	Equipment         []domaincatalog.Equipment           `yaml:"equipment"`
	Courses           []domaincatalog.Course              `yaml:"courses"`
	Milestones        []progression.Milestone             `yaml:"milestones"`
	Minigames         []minigame.Definition               `yaml:"minigames"`
	GenreRequirements map[string]scoring.GenreRequirement `yaml:"genreRequirements"`
}

// Parse decodes a YAML catalog on top of the built-in defaults.
func Parse(data []byte) (domaincatalog.Catalog, error) {
	cat := domaincatalog.Default()
	if len(bytes.TrimSpace(data)) == 0 {
		return cat, nil
	}

	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return domaincatalog.Catalog{}, fmt.Errorf("catalog: decode: %w", err)
	}

	if len(f.Equipment) > 0 {
		if err := uniqueIDs("equipment", len(f.Equipment), func(i int) string { return f.Equipment[i].ID }); err != nil {
			return domaincatalog.Catalog{}, err
		}
		cat.Equipment = f.Equipment
	}
	if len(f.Courses) > 0 {
		if err := uniqueIDs("course", len(f.Courses), func(i int) string { return f.Courses[i].ID }); err != nil {
			return domaincatalog.Catalog{}, err
		}
		for _, c := range f.Courses {
			if c.Duration < 1 {
				return domaincatalog.Catalog{}, fmt.Errorf("catalog: course %s: duration must be at least 1 day", c.ID)
			}
		}
		cat.Courses = f.Courses
	}
	if len(f.Milestones) > 0 {
		cat.Milestones = progression.NewMilestoneTable(f.Milestones...)
	}
	if len(f.Minigames) > 0 {
		reg := make(minigame.Registry, len(f.Minigames))
		for _, def := range f.Minigames {
			if err := def.Validate(); err != nil {
				return domaincatalog.Catalog{}, fmt.Errorf("catalog: %w", err)
			}
			reg[def.Type] = def
		}
		cat.Minigames = reg
	}
	if len(f.GenreRequirements) > 0 {
		reqs := make(scoring.GenreRequirements, len(f.GenreRequirements))
		for genre, req := range f.GenreRequirements {
			reqs[strings.ToLower(genre)] = req
		}
		cat.GenreRequirements = reqs
	}
	return cat, nil
}

// Load reads a catalog file. An empty path returns the built-in catalog.
func Load(path string) (domaincatalog.Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return domaincatalog.Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return domaincatalog.Catalog{}, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	cat, err := Parse(data)
	if err != nil {
		return domaincatalog.Catalog{}, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}

func uniqueIDs(kind string, n int, id func(int) string) error {
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		key := id(i)
		if key == "" {
			return fmt.Errorf("catalog: %s #%d has no id", kind, i+1)
		}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("catalog: duplicate %s id %q", kind, key)
		}
		seen[key] = struct{}{}
	}
	return nil
}
