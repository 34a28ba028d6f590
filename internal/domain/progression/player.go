package progression

import (
	"fmt"
	"math"

	"github.com/andrescamacho/studiosim-go/internal/domain/shared"
)

const (
	StartingXPToNextLevel = 100

	levelCurveFactor        = 1.5
	perkPointsPerLevel      = 1
	attributePointsPerLevel = 2
	baseDailyCapacity       = 3

	// AttributeBonusRate is the per-level bonus of an attribute above 1.
	AttributeBonusRate = 0.05

	// TrainingUnlockLevel gates staff training.
	TrainingUnlockLevel = 3
)

// Attribute names one of the player's upgradable attributes.
type Attribute string

const (
	FocusMastery      Attribute = "focusMastery"
	CreativeIntuition Attribute = "creativeIntuition"
	TechnicalAptitude Attribute = "technicalAptitude"
	BusinessAcumen    Attribute = "businessAcumen"
)

// AllAttributes lists every attribute
func AllAttributes() []Attribute {
	return []Attribute{FocusMastery, CreativeIntuition, TechnicalAptitude, BusinessAcumen}
}

// ParseAttribute validates an attribute name
func ParseAttribute(v string) (Attribute, error) {
	for _, a := range AllAttributes() {
		if string(a) == v {
			return a, nil
		}
	}
	return "", fmt.Errorf("invalid attribute: %s", v)
}

// Attributes holds the player's attribute levels.
type Attributes struct {
	FocusMastery      int
	CreativeIntuition int
	TechnicalAptitude int
	BusinessAcumen    int
}

// Get returns one attribute level
func (a Attributes) Get(attr Attribute) int {
	switch attr {
	case FocusMastery:
		return a.FocusMastery
	case CreativeIntuition:
		return a.CreativeIntuition
	case TechnicalAptitude:
		return a.TechnicalAptitude
	case BusinessAcumen:
		return a.BusinessAcumen
	default:
		return 0
	}
}

func (a Attributes) increment(attr Attribute) Attributes {
	switch attr {
	case FocusMastery:
		a.FocusMastery++
	case CreativeIntuition:
		a.CreativeIntuition++
	case TechnicalAptitude:
		a.TechnicalAptitude++
	case BusinessAcumen:
		a.BusinessAcumen++
	}
	return a
}

// Multiplier is 1 + 5% per level above the first.
func (a Attributes) Multiplier(attr Attribute) float64 {
	level := a.Get(attr)
	if level <= 1 {
		return 1
	}
	return 1 + float64(level-1)*AttributeBonusRate
}

// Player is the studio owner's progression state. It is a value type.
type Player struct {
	Level             int
	XP                int
	XPToNextLevel     int
	Attributes        Attributes
	AttributePoints   int
	PerkPoints        int
	DailyWorkCapacity int
	WorkSessionsUsed  int
	UnlockedPerks     []string
	UnlockedFeatures  []string
	ClaimedMilestones []int
}

// NewPlayer returns a level 1 player with every attribute at 1.
func NewPlayer() Player {
	p := Player{
		Level:         1,
		XPToNextLevel: StartingXPToNextLevel,
		Attributes:    Attributes{FocusMastery: 1, CreativeIntuition: 1, TechnicalAptitude: 1, BusinessAcumen: 1},
	}
	p.DailyWorkCapacity = DailyCapacity(p.Level, p.Attributes.FocusMastery)
	return p
}

// DailyCapacity is the number of work sessions available per day.
func DailyCapacity(level, focusMastery int) int {
	return focusMastery + baseDailyCapacity + level - 1
}

// NextThreshold applies the level curve: floor(x*1.5), never below 1.
func NextThreshold(current int) int {
	next := int(math.Floor(float64(current) * levelCurveFactor))
	if next < 1 {
		return 1
	}
	return next
}

// Clone returns a deep copy
func (p Player) Clone() Player {
	p.UnlockedPerks = append([]string(nil), p.UnlockedPerks...)
	p.UnlockedFeatures = append([]string(nil), p.UnlockedFeatures...)
	p.ClaimedMilestones = append([]int(nil), p.ClaimedMilestones...)
	return p
}

// LevelReport lists what an AddXP call unlocked.
type LevelReport struct {
	LevelsReached []int
	Milestones    []Milestone
}

// LeveledUp reports whether at least one level was gained
func (r LevelReport) LeveledUp() bool {
	return len(r.LevelsReached) > 0
}

// AddXP adds XP and applies every level-up it pays for, carrying the
// remainder. Each level crossed is checked against the milestone table and a
// milestone is never granted twice.
func (p Player) AddXP(amount int, table MilestoneTable) (Player, LevelReport) {
	var report LevelReport
	if amount <= 0 {
		return p, report
	}

	next := p.Clone()
	if next.XPToNextLevel < 1 {
		next.XPToNextLevel = StartingXPToNextLevel
	}
	next.XP += amount

	for next.XP >= next.XPToNextLevel {
		next.XP -= next.XPToNextLevel
		next.Level++
		next.XPToNextLevel = NextThreshold(next.XPToNextLevel)
		next.PerkPoints += perkPointsPerLevel
		next.AttributePoints += attributePointsPerLevel
		report.LevelsReached = append(report.LevelsReached, next.Level)

		if m, ok := table.Reward(next.Level); ok && !next.HasClaimed(m.Level) {
			next = next.claim(m)
			report.Milestones = append(report.Milestones, m)
		}
	}

	next.DailyWorkCapacity = DailyCapacity(next.Level, next.Attributes.FocusMastery)
	return next, report
}

// HasClaimed reports whether the milestone at level was already granted
func (p Player) HasClaimed(level int) bool {
	for _, l := range p.ClaimedMilestones {
		if l == level {
			return true
		}
	}
	return false
}

// HasFeature reports whether a milestone unlocked the feature
func (p Player) HasFeature(feature string) bool {
	for _, f := range p.UnlockedFeatures {
		if f == feature {
			return true
		}
	}
	return false
}

// Unlocked reports whether the player may use a course or piece of equipment.
// Anything a milestone lists stays locked until that milestone is claimed.
func (p Player) Unlocked(table MilestoneTable, id string) (bool, int) {
	level, gated := table.UnlockLevel(id)
	if !gated {
		return true, 0
	}
	return p.HasClaimed(level), level
}

func (p Player) claim(m Milestone) Player {
	p.ClaimedMilestones = append(p.ClaimedMilestones, m.Level)
	p.AttributePoints += m.AttributePoints
	p.PerkPoints += m.PerkPoints
	for _, f := range m.UnlockedFeatures {
		if !p.HasFeature(f) {
			p.UnlockedFeatures = append(p.UnlockedFeatures, f)
		}
	}
	return p
}

// SpendAttributePoint raises attr by one using an attribute point.
func (p Player) SpendAttributePoint(attr Attribute) (Player, error) {
	if p.AttributePoints <= 0 {
		return p, shared.NewNoPointsAvailableError("attribute")
	}
	if _, err := ParseAttribute(string(attr)); err != nil {
		return p, shared.NewValidationError("attribute", err.Error())
	}
	next := p.Clone()
	next.AttributePoints--
	next.Attributes = next.Attributes.increment(attr)
	next.DailyWorkCapacity = DailyCapacity(next.Level, next.Attributes.FocusMastery)
	return next, nil
}

// SpendPerkPoint raises attr by one using a perk point and records the perk.
func (p Player) SpendPerkPoint(attr Attribute) (Player, error) {
	if p.PerkPoints <= 0 {
		return p, shared.NewNoPointsAvailableError("perk")
	}
	if _, err := ParseAttribute(string(attr)); err != nil {
		return p, shared.NewValidationError("attribute", err.Error())
	}
	next := p.Clone()
	next.PerkPoints--
	next.Attributes = next.Attributes.increment(attr)
	next.UnlockedPerks = append(next.UnlockedPerks, fmt.Sprintf("%s+%d", attr, next.Attributes.Get(attr)))
	next.DailyWorkCapacity = DailyCapacity(next.Level, next.Attributes.FocusMastery)
	return next, nil
}

// RemainingSessions is how many work sessions are left today
func (p Player) RemainingSessions() int {
	if left := p.DailyWorkCapacity - p.WorkSessionsUsed; left > 0 {
		return left
	}
	return 0
}

// UseWorkSession consumes one daily work session.
func (p Player) UseWorkSession() (Player, error) {
	if p.RemainingSessions() == 0 {
		return p, shared.NewWorkCapacityExhaustedError(p.DailyWorkCapacity)
	}
	next := p.Clone()
	next.WorkSessionsUsed++
	return next, nil
}

// StartDay resets the session counter.
func (p Player) StartDay() Player {
	next := p.Clone()
	next.WorkSessionsUsed = 0
	next.DailyWorkCapacity = DailyCapacity(next.Level, next.Attributes.FocusMastery)
	return next
}
