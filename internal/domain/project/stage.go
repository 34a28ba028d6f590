package project

import (
	"fmt"
	"math"

	"github.com/andrescamacho/studiosim-go/internal/domain/focus"
	"github.com/andrescamacho/studiosim-go/internal/domain/shared"
)

// StageStatus tracks a stage through pending → in_progress → completed.
type StageStatus string

const (
	StagePending    StageStatus = "pending"
	StageInProgress StageStatus = "in_progress"
	StageCompleted  StageStatus = "completed"
)

func (s StageStatus) String() string {
	return string(s)
}

// canTransitionTo encodes the forward-only stage graph.
func (s StageStatus) canTransitionTo(to StageStatus) bool {
	switch s {
	case StagePending:
		return to == StageInProgress
	case StageInProgress:
		return to == StageCompleted
	case StageCompleted:
		return false
	default:
		return false
	}
}

// Stage is one ordered phase of a project.
type Stage struct {
	Name               string
	WorkUnitsRequired  int
	WorkUnitsCompleted int
	FocusAreas         focus.Weights
	MinigameTriggerID  string
	Status             StageStatus
}

// NewStage builds a pending stage.
func NewStage(name string, required int, areas focus.Weights, triggerID string) (Stage, error) {
	if name == "" {
		return Stage{}, shared.NewValidationError("name", "stage name is required")
	}
	if required <= 0 {
		return Stage{}, shared.NewValidationError("workUnitsRequired", fmt.Sprintf("must be positive, got %d", required))
	}
	if areas.IsZero() {
		areas = focus.DefaultWeights(name)
	}
	return Stage{
		Name:              name,
		WorkUnitsRequired: required,
		FocusAreas:        areas,
		MinigameTriggerID: triggerID,
		Status:            StagePending,
	}, nil
}

// Completed reports whether the work threshold has been reached.
func (s Stage) Completed() bool {
	return s.Status == StageCompleted
}

// ThresholdMet reports whether the stage holds enough work to advance.
func (s Stage) ThresholdMet() bool {
	return s.WorkUnitsCompleted >= s.WorkUnitsRequired
}

// Progress is completed/required in [0,1].
func (s Stage) Progress() float64 {
	if s.WorkUnitsRequired <= 0 {
		return 1
	}
	return math.Min(1, float64(s.WorkUnitsCompleted)/float64(s.WorkUnitsRequired))
}

// Remaining work units before the threshold
func (s Stage) Remaining() int {
	if s.ThresholdMet() {
		return 0
	}
	return s.WorkUnitsRequired - s.WorkUnitsCompleted
}

func (s Stage) transition(to StageStatus) (Stage, error) {
	if !s.Status.canTransitionTo(to) {
		return s, shared.NewInvalidTransitionError(s.Status.String(), to.String())
	}
	s.Status = to
	return s, nil
}

// addUnits adds raw units, capping at the threshold and moving the status
// forward. Non-positive amounts change nothing.
func (s Stage) addUnits(units int) Stage {
	if units <= 0 || s.Completed() {
		return s
	}
	if s.Status == StagePending {
		s, _ = s.transition(StageInProgress)
	}
	s.WorkUnitsCompleted += units
	if s.WorkUnitsCompleted >= s.WorkUnitsRequired {
		s.WorkUnitsCompleted = s.WorkUnitsRequired
		s, _ = s.transition(StageCompleted)
	}
	return s
}

// WorkType is the kind of effort a unit represents
type WorkType string

const (
	WorkCreativity WorkType = "creativity"
	WorkTechnical  WorkType = "technical"
)

// WorkSource identifies who produced a unit
type WorkSource string

const (
	SourcePlayer WorkSource = "player"
	SourceStaff  WorkSource = "staff"
)

// WorkUnit is one contribution to a stage.
type WorkUnit struct {
	Type     WorkType
	Value    int
	Source   WorkSource
	SourceID string
}

// AddWorkUnit records a contribution against the stage and returns the stage
// together with the value after the focus multiplier. Completed work is capped
// at the requirement; advancing the project is a separate step.
func AddWorkUnit(stage Stage, unit WorkUnit, multiplier float64) (Stage, int) {
	value := int(math.Floor(float64(unit.Value) * multiplier))
	if value <= 0 {
		return stage, 0
	}
	return stage.addUnits(value), value
}
