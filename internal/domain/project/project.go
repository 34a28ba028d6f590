package project

import (
	"fmt"

	"github.com/andrescamacho/studiosim-go/internal/domain/scoring"
	"github.com/andrescamacho/studiosim-go/internal/domain/shared"
)

// Status of a project in the studio pipeline.
type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

// Project is a client job made of ordered stages. Values are copied on every
// change; the stages slice is never shared between two projects.
type Project struct {
	ID                string
	Name              string
	Genre             string
	ClientType        string
	Difficulty        int
	Stages            []Stage
	CurrentStageIndex int
	CreativityPoints  int
	TechnicalPoints   int
	QualityScore      float64
	EfficiencyScore   float64
	PayoutBase        int
	RepGainBase       int
	Status            Status
	Settled           bool
	StartedDay        int
}

// Clone returns a deep copy
func (p Project) Clone() Project {
	stages := make([]Stage, len(p.Stages))
	copy(stages, p.Stages)
	p.Stages = stages
	return p
}

// Validate checks a project is usable as a job
func (p Project) Validate() error {
	if p.ID == "" {
		return shared.NewValidationError("id", "project id is required")
	}
	if len(p.Stages) == 0 {
		return shared.NewValidationError("stages", "project needs at least one stage")
	}
	for i, s := range p.Stages {
		if s.WorkUnitsRequired <= 0 {
			return shared.NewValidationError("stages", fmt.Sprintf("stage %d requires no work", i))
		}
	}
	return nil
}

// CurrentStage returns the stage being worked on
func (p Project) CurrentStage() (Stage, bool) {
	if p.CurrentStageIndex < 0 || p.CurrentStageIndex >= len(p.Stages) {
		return Stage{}, false
	}
	return p.Stages[p.CurrentStageIndex], true
}

// IsLastStage reports whether the current stage is the final one
func (p Project) IsLastStage() bool {
	return p.CurrentStageIndex == len(p.Stages)-1
}

// Activate moves a pending project into production.
func (p Project) Activate(day int) (Project, error) {
	if p.Status != StatusPending {
		return p, shared.NewInvalidTransitionError(p.Status.String(), StatusActive.String())
	}
	if err := p.Validate(); err != nil {
		return p, err
	}
	next := p.Clone()
	next.Status = StatusActive
	next.StartedDay = day
	next.CurrentStageIndex = 0
	return next, nil
}

// ApplyWork runs a contribution through AddWorkUnit on the current stage and
// adds the resulting value to the matching point pool. A completed stage that
// has not been advanced yet takes no more work and earns no points.
func (p Project) ApplyWork(unit WorkUnit, multiplier float64) (Project, int) {
	stage, ok := p.CurrentStage()
	if !ok || p.Status != StatusActive || stage.Completed() {
		return p, 0
	}
	stage, value := AddWorkUnit(stage, unit, multiplier)
	if value == 0 {
		return p, 0
	}
	next := p.withCurrentStage(stage)
	switch unit.Type {
	case WorkCreativity:
		next.CreativityPoints += value
	case WorkTechnical:
		next.TechnicalPoints += value
	}
	return next, value
}

// AddPoints adds creativity/technical points without touching stage work.
func (p Project) AddPoints(creativity, technical int) Project {
	next := p.Clone()
	if creativity > 0 {
		next.CreativityPoints += creativity
	}
	if technical > 0 {
		next.TechnicalPoints += technical
	}
	return next
}

// AddStageWork adds units straight to the current stage, bypassing the focus
// multiplier. The cap still applies.
func (p Project) AddStageWork(units int) Project {
	stage, ok := p.CurrentStage()
	if !ok {
		return p
	}
	return p.withCurrentStage(stage.addUnits(units))
}

func (p Project) withCurrentStage(stage Stage) Project {
	next := p.Clone()
	next.Stages[next.CurrentStageIndex] = stage
	return next
}

// StageOutcome describes the result of an AdvanceStage call.
type StageOutcome struct {
	Advanced   bool
	StageIndex int
	StageName  string
	Quality    int
	Efficiency int
	Completed  bool
	Settlement scoring.Settlement
}

// AdvanceStage finishes the current stage once its threshold is met. Each
// stage contributes quality/efficiency divided by the stage count, so the
// cumulative scores stay on the per-stage scale. Below the threshold the
// project is returned unchanged.
func AdvanceStage(p Project, bonuses scoring.StageBonuses) (Project, StageOutcome) {
	stage, ok := p.CurrentStage()
	if !ok || p.Status != StatusActive || !stage.ThresholdMet() {
		return p, StageOutcome{}
	}

	quality := scoring.StageQuality(stage.WorkUnitsCompleted, stage.WorkUnitsRequired, bonuses)
	efficiency := scoring.StageEfficiency(stage.WorkUnitsCompleted, stage.WorkUnitsRequired, bonuses)

	next := p.Clone()
	stages := float64(len(next.Stages))
	next.QualityScore += float64(quality) / stages
	next.EfficiencyScore += float64(efficiency) / stages

	out := StageOutcome{
		Advanced:   true,
		StageIndex: p.CurrentStageIndex,
		StageName:  stage.Name,
		Quality:    quality,
		Efficiency: efficiency,
	}

	if next.IsLastStage() {
		settled, settlement, ok := Complete(next)
		out.Completed = ok
		out.Settlement = settlement
		return settled, out
	}

	next.CurrentStageIndex++
	return next, out
}

// Complete settles the project. It is one-shot: a settled project is returned
// unchanged with ok=false.
func Complete(p Project) (Project, scoring.Settlement, bool) {
	if p.Settled {
		return p, scoring.Settlement{}, false
	}
	settlement := scoring.Settle(p.QualityScore, p.EfficiencyScore, p.PayoutBase, p.RepGainBase, p.Difficulty)
	next := p.Clone()
	next.Status = StatusCompleted
	next.Settled = true
	return next, settlement, true
}
