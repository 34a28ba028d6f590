package game

import (
	"github.com/andrescamacho/studiosim-go/internal/domain/catalog"
	"github.com/andrescamacho/studiosim-go/internal/domain/focus"
	"github.com/andrescamacho/studiosim-go/internal/domain/minigame"
	"github.com/andrescamacho/studiosim-go/internal/domain/progression"
	"github.com/andrescamacho/studiosim-go/internal/domain/project"
	"github.com/andrescamacho/studiosim-go/internal/domain/staff"
)

// Rules are the tunable economy constants of a session.
type Rules struct {
	SigningFeeMultiplier int
	SalaryIntervalDays   int
}

// DefaultRules returns the standard economy
func DefaultRules() Rules {
	return Rules{SigningFeeMultiplier: 2, SalaryIntervalDays: 7}
}

// State is one complete snapshot of a studio. Reduce never mutates a State it
// is given; it returns a fresh one.
type State struct {
	Day               int
	Money             int
	Reputation        int
	Player            progression.Player
	Staff             staff.Roster
	Candidates        staff.Roster
	AvailableProjects []project.Project
	ActiveProject     *project.Project
	CompletedProjects []project.Project
	Focus             focus.Allocation
	Minigames         minigame.Board
	OwnedEquipment    []string
	StudioSkills      map[string]int
	Catalog           catalog.Catalog
	Rules             Rules
}

// Setup configures a new session.
type Setup struct {
	Money      int
	Reputation int
	Focus      focus.Allocation
	Catalog    catalog.Catalog
	Rules      Rules
}

// NewState builds day 1 of a new studio.
func NewState(setup Setup) *State {
	alloc := setup.Focus
	if alloc.Validate() != nil {
		alloc = focus.Balanced()
	}
	rules := setup.Rules
	if rules.SigningFeeMultiplier <= 0 {
		rules.SigningFeeMultiplier = DefaultRules().SigningFeeMultiplier
	}
	if rules.SalaryIntervalDays <= 0 {
		rules.SalaryIntervalDays = DefaultRules().SalaryIntervalDays
	}
	return &State{
		Day:          1,
		Money:        setup.Money,
		Reputation:   setup.Reputation,
		Player:       progression.NewPlayer(),
		Staff:        staff.NewRoster(),
		Candidates:   staff.NewRoster(),
		Focus:        alloc,
		Minigames:    minigame.NewBoard(),
		StudioSkills: map[string]int{},
		Catalog:      setup.Catalog,
		Rules:        rules,
	}
}

// Clone returns a deep copy. Rosters and the minigame board are immutable
// values and are shared; the catalog is read-only.
func (s *State) Clone() *State {
	next := *s
	next.Player = s.Player.Clone()
	next.AvailableProjects = cloneProjects(s.AvailableProjects)
	next.CompletedProjects = cloneProjects(s.CompletedProjects)
	if s.ActiveProject != nil {
		active := s.ActiveProject.Clone()
		next.ActiveProject = &active
	}
	next.OwnedEquipment = append([]string(nil), s.OwnedEquipment...)
	next.StudioSkills = make(map[string]int, len(s.StudioSkills))
	for k, v := range s.StudioSkills {
		next.StudioSkills[k] = v
	}
	return &next
}

// ActiveProjectID returns the active project's ID or ""
func (s *State) ActiveProjectID() string {
	if s.ActiveProject == nil {
		return ""
	}
	return s.ActiveProject.ID
}

// AssignedStaff lists the roster members attached to a project. The roster is
// the only record of assignment.
func (s *State) AssignedStaff(projectID string) []staff.Member {
	return s.Staff.AssignedTo(projectID)
}

// CurrentStageKey identifies the active project's current stage
func (s *State) CurrentStageKey() (minigame.Key, bool) {
	if s.ActiveProject == nil {
		return minigame.Key{}, false
	}
	return minigame.Key{ProjectID: s.ActiveProject.ID, StageIndex: s.ActiveProject.CurrentStageIndex}, true
}

// Owns reports whether the studio has bought the equipment
func (s *State) Owns(equipmentID string) bool {
	for _, id := range s.OwnedEquipment {
		if id == equipmentID {
			return true
		}
	}
	return false
}

// Bonuses returns the studio bonuses in effect for a genre
func (s *State) Bonuses(genre string) catalog.Bonuses {
	return s.Catalog.StudioBonuses(s.OwnedEquipment, s.StudioSkills, genre)
}

// OptimalFocus computes the recommended split for the active project's
// current stage from the staff assigned to it.
func (s *State) OptimalFocus() (focus.Optimal, bool) {
	if s.ActiveProject == nil {
		return focus.Optimal{}, false
	}
	stage, ok := s.ActiveProject.CurrentStage()
	if !ok {
		return focus.Optimal{}, false
	}
	assigned := s.AssignedStaff(s.ActiveProject.ID)
	profiles := make([]focus.StaffProfile, 0, len(assigned))
	for _, m := range assigned {
		profiles = append(profiles, focus.StaffProfile{
			Name:       m.Name,
			Creativity: m.Stats.Creativity,
			Technical:  m.Stats.Technical,
			Speed:      m.Stats.Speed,
		})
	}
	return focus.ComputeOptimal(profiles, focus.StageProfile{
		Name:       stage.Name,
		Genre:      s.ActiveProject.Genre,
		FocusAreas: stage.FocusAreas,
	}), true
}

// FindAvailableProject looks a project up in the available pool
func (s *State) FindAvailableProject(id string) (project.Project, int, bool) {
	for i, p := range s.AvailableProjects {
		if p.ID == id {
			return p, i, true
		}
	}
	return project.Project{}, -1, false
}

func cloneProjects(in []project.Project) []project.Project {
	if in == nil {
		return nil
	}
	out := make([]project.Project, len(in))
	for i, p := range in {
		out[i] = p.Clone()
	}
	return out
}
