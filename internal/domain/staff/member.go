package staff

import (
	"math"
	"strings"

	"github.com/andrescamacho/studiosim-go/internal/domain/scoring"
	"github.com/andrescamacho/studiosim-go/pkg/utils"
)

const (
	MaxEnergy = 100

	// Below this energy a member works at a fraction of the normal rate.
	lowEnergyThreshold = 20

	xpPerLevelInRole   = 50
	statGainPerLevel   = 2
	workEnergyCost     = 10
	practiceXPPerDay   = 15
	contributionFactor = 0.15
)

// Stats are the primary attributes of a staff member.
type Stats struct {
	Creativity int `yaml:"creativity"`
	Technical  int `yaml:"technical"`
	Speed      int `yaml:"speed"`
}

// Add returns the component-wise sum
func (s Stats) Add(other Stats) Stats {
	return Stats{
		Creativity: s.Creativity + other.Creativity,
		Technical:  s.Technical + other.Technical,
		Speed:      s.Speed + other.Speed,
	}
}

// GenreAffinity is a percentage bonus applied when working in a genre.
type GenreAffinity struct {
	Genre string
	Bonus int
}

// Applies reports whether the affinity matches the genre
func (g GenreAffinity) Applies(genre string) bool {
	return g.Genre != "" && strings.EqualFold(g.Genre, genre)
}

// TrainingPlan is what a member receives when a course finishes.
type TrainingPlan struct {
	CourseID   string
	EndDay     int
	Boost      Stats
	SkillGenre string
	SkillGain  int
}

// Member is a hired staff member or a candidate. It is a value type; Roster
// methods return updated copies.
type Member struct {
	ID                string
	Name              string
	Role              Role
	Status            Status
	Energy            int
	Stats             Stats
	LevelInRole       int
	XPInRole          int
	AssignedProjectID string
	GenreAffinity     GenreAffinity
	Skills            map[string]int
	Salary            int
	Training          *TrainingPlan
	PracticeStartDay  int
	PracticeEndDay    int
}

// IsAssigned reports whether the member is attached to a project
func (m Member) IsAssigned() bool {
	return m.AssignedProjectID != ""
}

// XPToNextLevel is the in-role threshold for the member's current level.
func (m Member) XPToNextLevel() int {
	return utils.Max(1, m.LevelInRole) * xpPerLevelInRole
}

// GenreSkill returns the member's skill in a genre and whether they have one.
func (m Member) GenreSkill(genre string) (int, bool) {
	for g, v := range m.Skills {
		if strings.EqualFold(g, genre) {
			return v, true
		}
	}
	return 0, false
}

// MatchInput projects the member onto the match-score inputs for a genre.
func (m Member) MatchInput(genre string) scoring.MatchInput {
	skill, ok := m.GenreSkill(genre)
	return scoring.MatchInput{
		Creativity:    m.Stats.Creativity,
		Technical:     m.Stats.Technical,
		Energy:        m.Energy,
		GenreSkill:    skill,
		HasGenreSkill: ok,
	}
}

// Contribution is the creativity/technical output of one work session on a
// project of the given genre, before focus and studio bonuses.
func (m Member) Contribution(genre string) (creativity, technical int) {
	if m.Energy < lowEnergyThreshold {
		creativity = int(math.Floor(float64(m.Stats.Creativity) * 0.1 * 0.3))
		technical = int(math.Floor(float64(m.Stats.Technical) * 0.1 * 0.3))
	} else {
		creativity = int(math.Floor(float64(m.Stats.Creativity) * contributionFactor))
		technical = int(math.Floor(float64(m.Stats.Technical) * contributionFactor))
	}

	if m.GenreAffinity.Applies(genre) {
		factor := 1 + float64(m.GenreAffinity.Bonus)/100
		creativity = int(math.Floor(float64(creativity) * factor))
		technical = int(math.Floor(float64(technical) * factor))
	}
	return creativity, technical
}

func (m Member) clone() Member {
	if m.Skills != nil {
		skills := make(map[string]int, len(m.Skills))
		for k, v := range m.Skills {
			skills[k] = v
		}
		m.Skills = skills
	}
	if m.Training != nil {
		plan := *m.Training
		m.Training = &plan
	}
	return m
}

// addXP applies in-role XP, levelling up as many times as the amount allows.
func (m Member) addXP(amount int) (Member, int) {
	if amount <= 0 {
		return m, 0
	}
	if m.LevelInRole < 1 {
		m.LevelInRole = 1
	}
	m.XPInRole += amount

	levels := 0
	for m.XPInRole >= m.XPToNextLevel() {
		m.XPInRole -= m.XPToNextLevel()
		m.LevelInRole++
		m.Stats = m.Stats.Add(Stats{Creativity: statGainPerLevel, Technical: statGainPerLevel, Speed: statGainPerLevel})
		levels++
	}
	return m, levels
}

func (m Member) withEnergy(delta int) Member {
	m.Energy = utils.Clamp(m.Energy+delta, 0, MaxEnergy)
	return m
}
