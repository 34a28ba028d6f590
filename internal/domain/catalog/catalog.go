package catalog

import (
	"math"
	"strings"

	"github.com/andrescamacho/studiosim-go/internal/domain/minigame"
	"github.com/andrescamacho/studiosim-go/internal/domain/progression"
	"github.com/andrescamacho/studiosim-go/internal/domain/scoring"
	"github.com/andrescamacho/studiosim-go/internal/domain/staff"
)

const (
	// MaxStudioSkillLevel caps the per-genre studio skill.
	MaxStudioSkillLevel = 10

	maxStageBonusLevel = 5

	creativityPctPerSkillLevel = 2.0
	technicalPctPerSkillLevel  = 1.5
	qualityPctPerSkillLevel    = 1.0
)

// EquipmentBonuses are percentage bonuses plus per-genre bonus levels.
type EquipmentBonuses struct {
	Quality    int            `yaml:"quality"`
	Creativity int            `yaml:"creativity"`
	Technical  int            `yaml:"technical"`
	Speed      int            `yaml:"speed"`
	Genre      map[string]int `yaml:"genre"`
}

// Equipment is a purchasable studio item.
type Equipment struct {
	ID          string           `yaml:"id"`
	Name        string           `yaml:"name"`
	Category    string           `yaml:"category"`
	Price       int              `yaml:"price"`
	Description string           `yaml:"description"`
	Bonuses     EquipmentBonuses `yaml:"bonuses"`
}

// Course is a staff training course.
type Course struct {
	ID          string      `yaml:"id"`
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Cost        int         `yaml:"cost"`
	Duration    int         `yaml:"duration"`
	Boost       staff.Stats `yaml:"boost"`
	SkillGenre  string      `yaml:"skillGenre"`
	SkillGain   int         `yaml:"skillGain"`
}

// Plan turns the course into a training plan ending duration days after day.
func (c Course) Plan(day int) staff.TrainingPlan {
	return staff.TrainingPlan{
		CourseID:   c.ID,
		EndDay:     day + c.Duration,
		Boost:      c.Boost,
		SkillGenre: c.SkillGenre,
		SkillGain:  c.SkillGain,
	}
}

// Catalog is the read-only game data the engine consults. Nothing in the
// engine mutates it.
type Catalog struct {
	Equipment         []Equipment
	Courses           []Course
	Milestones        progression.MilestoneTable
	Minigames         minigame.Registry
	GenreRequirements scoring.GenreRequirements
}

// FindEquipment looks up equipment by ID
func (c Catalog) FindEquipment(id string) (Equipment, bool) {
	for _, e := range c.Equipment {
		if e.ID == id {
			return e, true
		}
	}
	return Equipment{}, false
}

// FindCourse looks up a training course by ID
func (c Catalog) FindCourse(id string) (Course, bool) {
	for _, course := range c.Courses {
		if course.ID == id {
			return course, true
		}
	}
	return Course{}, false
}

// Bonuses are the studio-wide modifiers in effect for one genre.
type Bonuses struct {
	QualityPct    float64
	CreativityPct float64
	TechnicalPct  float64
	SpeedPct      float64
	GenreLevels   int
}

// StudioBonuses aggregates owned equipment and the studio skill for genre.
func (c Catalog) StudioBonuses(owned []string, skills map[string]int, genre string) Bonuses {
	var b Bonuses
	for _, id := range owned {
		e, ok := c.FindEquipment(id)
		if !ok {
			continue
		}
		b.QualityPct += float64(e.Bonuses.Quality)
		b.CreativityPct += float64(e.Bonuses.Creativity)
		b.TechnicalPct += float64(e.Bonuses.Technical)
		b.SpeedPct += float64(e.Bonuses.Speed)
		for g, lvl := range e.Bonuses.Genre {
			if strings.EqualFold(g, genre) {
				b.GenreLevels += lvl
			}
		}
	}

	level := StudioSkillLevel(skills, genre)
	b.CreativityPct += float64(level) * creativityPctPerSkillLevel
	b.TechnicalPct += float64(level) * technicalPctPerSkillLevel
	b.QualityPct += float64(level) * qualityPctPerSkillLevel
	return b
}

// ApplyToWork scales raw creativity/technical output by the bonuses.
func (b Bonuses) ApplyToWork(creativity, technical int) (int, int) {
	speed := 1 + b.SpeedPct/100
	c := float64(creativity) * (1 + b.CreativityPct/100) * speed
	t := float64(technical) * (1 + b.TechnicalPct/100) * speed
	return int(math.Floor(c)), int(math.Floor(t))
}

// StageBonuses converts percentages into the bonus levels stage scoring uses:
// one creativity level per 10% creativity+quality plus genre levels, one
// technical level per 10% technical, each capped at 5.
func (b Bonuses) StageBonuses() scoring.StageBonuses {
	c := int(math.Floor((b.CreativityPct+b.QualityPct)/10)) + b.GenreLevels
	t := int(math.Floor(b.TechnicalPct / 10))
	return scoring.StageBonuses{
		Creativity: clampLevel(c),
		Technical:  clampLevel(t),
	}
}

// StudioSkillLevel returns the studio's level in a genre, case-insensitively.
func StudioSkillLevel(skills map[string]int, genre string) int {
	for g, lvl := range skills {
		if strings.EqualFold(g, genre) {
			return lvl
		}
	}
	return 0
}

func clampLevel(v int) int {
	if v < 0 {
		return 0
	}
	if v > maxStageBonusLevel {
		return maxStageBonusLevel
	}
	return v
}
