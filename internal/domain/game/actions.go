package game

import (
	"github.com/andrescamacho/studiosim-go/internal/domain/minigame"
	"github.com/andrescamacho/studiosim-go/internal/domain/project"
	"github.com/andrescamacho/studiosim-go/internal/domain/staff"
)

// Action is a closed set of player intents. Only types in this package
// implement it.
type Action interface {
	// Name is a stable identifier used for logging and metrics.
	Name() string
	isAction()
}

// Staff

type HireStaff struct{ CandidateID string }
type AssignStaff struct{ StaffID string }
type UnassignStaff struct{ StaffID string }
type ToggleStaffRest struct{ StaffID string }

type AddStaffXP struct {
	StaffID string
	Amount  int
}

type SendStaffToTraining struct {
	StaffID  string
	CourseID string
}

type StartStaffPractice struct {
	StaffID string
	Days    int
}

// Projects and work

type OfferProjects struct{ Projects []project.Project }
type OfferCandidates struct{ Candidates []staff.Member }
type StartProject struct{ ProjectID string }

type SetFocus struct {
	Performance  int
	SoundCapture int
	Layering     int
}

// PerformWork runs one work session: the player and every assigned staff
// member contribute to the current stage.
type PerformWork struct{}

// AddWork feeds a single contribution through the focus multiplier.
type AddWork struct {
	Type     project.WorkType
	Value    int
	Source   project.WorkSource
	SourceID string
}

type AdvanceStage struct{}
type AdvanceDay struct{}

// Minigames

type OpenMinigame struct{}

type MinigameCompleted struct {
	Type  minigame.Type
	Score int
}

type MinigameDismissed struct{}

// Progression and studio

type AddXP struct{ Amount int }
type SpendAttributePoint struct{ Attribute string }
type SpendPerkPoint struct{ Attribute string }
type PurchaseEquipment struct{ EquipmentID string }

func (HireStaff) Name() string           { return "HireStaff" }
func (AssignStaff) Name() string         { return "AssignStaff" }
func (UnassignStaff) Name() string       { return "UnassignStaff" }
func (ToggleStaffRest) Name() string     { return "ToggleStaffRest" }
func (AddStaffXP) Name() string          { return "AddStaffXP" }
func (SendStaffToTraining) Name() string { return "SendStaffToTraining" }
func (StartStaffPractice) Name() string  { return "StartStaffPractice" }
func (OfferProjects) Name() string       { return "OfferProjects" }
func (OfferCandidates) Name() string     { return "OfferCandidates" }
func (StartProject) Name() string        { return "StartProject" }
func (SetFocus) Name() string            { return "SetFocus" }
func (PerformWork) Name() string         { return "PerformWork" }
func (AddWork) Name() string             { return "AddWork" }
func (AdvanceStage) Name() string        { return "AdvanceStage" }
func (AdvanceDay) Name() string          { return "AdvanceDay" }
func (OpenMinigame) Name() string        { return "OpenMinigame" }
func (MinigameCompleted) Name() string   { return "MinigameCompleted" }
func (MinigameDismissed) Name() string   { return "MinigameDismissed" }
func (AddXP) Name() string               { return "AddXP" }
func (SpendAttributePoint) Name() string { return "SpendAttributePoint" }
func (SpendPerkPoint) Name() string      { return "SpendPerkPoint" }
func (PurchaseEquipment) Name() string   { return "PurchaseEquipment" }

func (HireStaff) isAction()           {}
func (AssignStaff) isAction()         {}
func (UnassignStaff) isAction()       {}
func (ToggleStaffRest) isAction()     {}
func (AddStaffXP) isAction()          {}
func (SendStaffToTraining) isAction() {}
func (StartStaffPractice) isAction()  {}
func (OfferProjects) isAction()       {}
func (OfferCandidates) isAction()     {}
func (StartProject) isAction()        {}
func (SetFocus) isAction()            {}
func (PerformWork) isAction()         {}
func (AddWork) isAction()             {}
func (AdvanceStage) isAction()        {}
func (AdvanceDay) isAction()          {}
func (OpenMinigame) isAction()        {}
func (MinigameCompleted) isAction()   {}
func (MinigameDismissed) isAction()   {}
func (AddXP) isAction()               {}
func (SpendAttributePoint) isAction() {}
func (SpendPerkPoint) isAction()      {}
func (PurchaseEquipment) isAction()   {}
