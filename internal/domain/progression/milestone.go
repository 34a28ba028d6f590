package progression

import "sort"

// Milestone is a one-shot reward package granted on reaching a level.
type Milestone struct {
	Level            int      `yaml:"level"`
	ID               string   `yaml:"id"`
	Name             string   `yaml:"name"`
	Description      string   `yaml:"description"`
	AttributePoints  int      `yaml:"attributePoints"`
	PerkPoints       int      `yaml:"perkPoints"`
	UnlockedFeatures []string `yaml:"unlockedFeatures"`
	TrainingCourses  []string `yaml:"trainingCourses"`
	Equipment        []string `yaml:"equipment"`
}

// MilestoneTable is an immutable, level-ordered set of milestones.
type MilestoneTable struct {
	milestones []Milestone
}

// NewMilestoneTable sorts the milestones by level. Later duplicates of a level
// are dropped.
func NewMilestoneTable(milestones ...Milestone) MilestoneTable {
	sorted := make([]Milestone, len(milestones))
	copy(sorted, milestones)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Level < sorted[j].Level })

	out := make([]Milestone, 0, len(sorted))
	for _, m := range sorted {
		if len(out) > 0 && out[len(out)-1].Level == m.Level {
			continue
		}
		out = append(out, m)
	}
	return MilestoneTable{milestones: out}
}

// DefaultMilestones returns the built-in milestone table.
func DefaultMilestones() MilestoneTable {
	return NewMilestoneTable(
		Milestone{
			Level: 5, ID: "level_5", Name: "Aspiring Producer",
			Description:      "Your growing reputation attracts new opportunities.",
			AttributePoints:  2,
			PerkPoints:       1,
			UnlockedFeatures: []string{"new_project_types", "basic_staff_training"},
			TrainingCourses:  []string{"basic_mixing", "recording_fundamentals"},
		},
		Milestone{
			Level: 10, ID: "level_10", Name: "Established Studio",
			Description:      "Your studio gains recognition in the local scene.",
			AttributePoints:  3,
			PerkPoints:       2,
			UnlockedFeatures: []string{"advanced_staff_training", "genre_specialization"},
			TrainingCourses:  []string{"advanced_mixing", "vocal_production"},
			Equipment:        []string{"pro_condenser_mic", "vintage_preamp"},
		},
		Milestone{
			Level: 15, ID: "level_15", Name: "Industry Professional",
			Description:      "High-profile clients begin seeking your services.",
			AttributePoints:  3,
			PerkPoints:       2,
			UnlockedFeatures: []string{"high_profile_clients", "specialized_equipment"},
			Equipment:        []string{"mastering_suite", "analog_console"},
		},
		Milestone{
			Level: 20, ID: "level_20", Name: "Production Master",
			Description:      "Your studio becomes a premier destination for top artists.",
			AttributePoints:  4,
			PerkPoints:       3,
			UnlockedFeatures: []string{"master_techniques", "premium_clients"},
			TrainingCourses:  []string{"master_production", "advanced_sound_design"},
		},
		Milestone{
			Level: 25, ID: "level_25", Name: "Industry Legend",
			Description:      "Your influence shapes the future of music production.",
			AttributePoints:  5,
			PerkPoints:       3,
			UnlockedFeatures: []string{"legendary_projects", "mentorship"},
			Equipment:        []string{"legendary_console", "rare_microphone_collection"},
		},
	)
}

// IsMilestoneLevel reports whether the table has a milestone at level
func (t MilestoneTable) IsMilestoneLevel(level int) bool {
	_, ok := t.Reward(level)
	return ok
}

// Reward returns the milestone configured at exactly level
func (t MilestoneTable) Reward(level int) (Milestone, bool) {
	for _, m := range t.milestones {
		if m.Level == level {
			return m, true
		}
	}
	return Milestone{}, false
}

// NextMilestoneLevel returns the first milestone level >= level. ok is false
// once every milestone is behind the player.
func (t MilestoneTable) NextMilestoneLevel(level int) (int, bool) {
	for _, m := range t.milestones {
		if m.Level >= level {
			return m.Level, true
		}
	}
	return 0, false
}

// UnlockLevel returns the level of the milestone that lists id among its
// training courses or equipment. Items no milestone lists are always available.
func (t MilestoneTable) UnlockLevel(id string) (int, bool) {
	for _, m := range t.milestones {
		for _, listed := range append(append([]string(nil), m.TrainingCourses...), m.Equipment...) {
			if listed == id {
				return m.Level, true
			}
		}
	}
	return 0, false
}

// Milestones returns a copy of every milestone, ordered by level
func (t MilestoneTable) Milestones() []Milestone {
	out := make([]Milestone, len(t.milestones))
	copy(out, t.milestones)
	return out
}
