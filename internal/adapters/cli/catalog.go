package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	domaincatalog "github.com/andrescamacho/studiosim-go/internal/domain/catalog"
	"github.com/andrescamacho/studiosim-go/internal/domain/minigame"
	"github.com/andrescamacho/studiosim-go/internal/infrastructure/catalog"
	"github.com/andrescamacho/studiosim-go/internal/infrastructure/config"
)

// NewCatalogCommand creates the catalog command with subcommands
func NewCatalogCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the game catalog",
		Long: `Browse the equipment, training courses, minigames and milestones the
engine plays with.

The built-in catalog is used unless game.catalog_path is configured or
--file names a YAML catalog overlay.

Examples:
  studiosim catalog equipment
  studiosim catalog courses --file ./configs/catalog.yaml
  studiosim catalog minigames
  studiosim catalog milestones`,
	}

	cmd.PersistentFlags().StringVar(&file, "file", "", "YAML catalog overlay to load")

	load := func() (domaincatalog.Catalog, error) {
		path := file
		if path == "" {
			path = config.LoadConfigOrDefault(configPath).Game.CatalogPath
		}
		c, err := catalog.Load(path)
		if err != nil {
			return domaincatalog.Catalog{}, fmt.Errorf("failed to load catalog: %w", err)
		}
		return c, nil
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "equipment",
		Short: "List purchasable equipment",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := load()
			if err != nil {
				return err
			}
			displayEquipment(c.Equipment)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "courses",
		Short: "List training courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := load()
			if err != nil {
				return err
			}
			displayCourses(c.Courses)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "minigames",
		Short: "List minigames and their rewards",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := load()
			if err != nil {
				return err
			}
			displayMinigames(c.Minigames)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "milestones",
		Short: "List level milestones",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := load()
			if err != nil {
				return err
			}
			displayMilestones(c)
			return nil
		},
	})

	return cmd
}

func displayEquipment(items []domaincatalog.Equipment) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tName\tCategory\tPrice\tBonuses")
	fmt.Fprintln(w, "──\t────\t────────\t─────\t───────")
	for _, e := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.ID, e.Name, e.Category, formatMoney(e.Price), describeBonuses(e.Bonuses))
	}
	w.Flush()
}

func describeBonuses(b domaincatalog.EquipmentBonuses) string {
	var parts []string
	for _, p := range []struct {
		label string
		value int
	}{
		{"quality", b.Quality},
		{"creativity", b.Creativity},
		{"technical", b.Technical},
		{"speed", b.Speed},
	} {
		if p.value != 0 {
			parts = append(parts, fmt.Sprintf("+%d%% %s", p.value, p.label))
		}
	}
	genres := make([]string, 0, len(b.Genre))
	for g := range b.Genre {
		genres = append(genres, g)
	}
	sort.Strings(genres)
	for _, g := range genres {
		parts = append(parts, fmt.Sprintf("%s +%d", g, b.Genre[g]))
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}

func displayCourses(courses []domaincatalog.Course) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tName\tCost\tDays\tBoost (C/T/S)\tSkill")
	fmt.Fprintln(w, "──\t────\t────\t────\t─────────────\t─────")
	for _, c := range courses {
		skill := "-"
		if c.SkillGenre != "" {
			skill = fmt.Sprintf("%s +%d", c.SkillGenre, c.SkillGain)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d/%d/%d\t%s\n",
			c.ID, c.Name, formatMoney(c.Cost), c.Duration,
			c.Boost.Creativity, c.Boost.Technical, c.Boost.Speed, skill)
	}
	w.Flush()
}

func displayMinigames(reg minigame.Registry) {
	types := make([]string, 0, len(reg))
	for t := range reg {
		types = append(types, string(t))
	}
	sort.Strings(types)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Type\tName\tDifficulty\tReward\tCreative %")
	fmt.Fprintln(w, "────\t────\t──────────\t──────\t──────────")
	for _, t := range types {
		d := reg[minigame.Type(t)]
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%d\n", d.Type, d.Name, d.Difficulty, d.Reward, d.CreativeShare)
	}
	w.Flush()
}

func displayMilestones(c domaincatalog.Catalog) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Level\tName\tPoints (A/P)\tUnlocks")
	fmt.Fprintln(w, "─────\t────\t────────────\t───────")
	for _, m := range c.Milestones.Milestones() {
		unlocks := append(append(append([]string{}, m.UnlockedFeatures...), m.TrainingCourses...), m.Equipment...)
		list := "-"
		if len(unlocks) > 0 {
			list = strings.Join(unlocks, ", ")
		}
		fmt.Fprintf(w, "%d\t%s\t%d/%d\t%s\n", m.Level, m.Name, m.AttributePoints, m.PerkPoints, list)
	}
	w.Flush()
}
