package script

import (
	"context"
	"fmt"

	"github.com/andrescamacho/studiosim-go/internal/application/mediator"
	studioCommands "github.com/andrescamacho/studiosim-go/internal/application/studio/commands"
	studioQueries "github.com/andrescamacho/studiosim-go/internal/application/studio/queries"
	"github.com/andrescamacho/studiosim-go/internal/domain/game"
	"github.com/andrescamacho/studiosim-go/internal/domain/staff"
)

// maxFinishRounds bounds the finish verb so a project that cannot progress
// (for example with every contribution rounding to zero) ends the script.
const maxFinishRounds = 500

// StepResult is the outcome of one dispatched action.
type StepResult struct {
	Step     int
	Action   string
	Rejected bool
	Reason   string
	Events   []game.Event
}

// Report summarises a script run.
type Report struct {
	Results  []StepResult
	Applied  int
	Rejected int
	Final    *game.State
}

// Executor runs scripts through the mediator.
type Executor struct {
	mediator mediator.Mediator

	// OnResult, when set, is called after every dispatched action.
	OnResult func(StepResult)
}

// NewExecutor creates an executor sending requests through m
func NewExecutor(m mediator.Mediator) *Executor {
	return &Executor{mediator: m}
}

// Run executes every step in order. Domain rejections are recorded and the
// script carries on; infrastructure errors stop it.
func (e *Executor) Run(ctx context.Context, s Script) (*Report, error) {
	report := &Report{}
	for i, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if err := e.runStep(ctx, report, i+1, step); err != nil {
			return report, fmt.Errorf("step %d (%s): %w", i+1, step, err)
		}
	}

	state, err := e.state(ctx)
	if err != nil {
		return report, err
	}
	report.Final = state
	return report, nil
}

func (e *Executor) runStep(ctx context.Context, report *Report, index int, step Step) error {
	for n := 0; n < step.Repeat(); n++ {
		switch step.Do {
		case VerbMinigame:
			if err := e.playMinigame(ctx, report, index); err != nil {
				return err
			}
		case VerbRecommend:
			if err := e.applyRecommendedFocus(ctx, report, index); err != nil {
				return err
			}
		case VerbFinish:
			if err := e.finish(ctx, report, index); err != nil {
				return err
			}
		default:
			state, err := e.state(ctx)
			if err != nil {
				return err
			}
			actions, err := e.resolve(ctx, state, step)
			if err != nil {
				return err
			}
			for _, a := range actions {
				if _, err := e.dispatch(ctx, report, index, a); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// resolve turns a step into concrete actions against the latest snapshot
func (e *Executor) resolve(ctx context.Context, s *game.State, step Step) ([]game.Action, error) {
	switch step.Do {
	case VerbHire:
		id, err := e.pickCandidate(ctx, s, step.Target)
		if err != nil {
			return nil, err
		}
		return []game.Action{game.HireStaff{CandidateID: id}}, nil
	case VerbAssign:
		if step.Target == TargetAll {
			var actions []game.Action
			for _, m := range s.Staff.Members() {
				if m.Status == staff.StatusIdle && !m.IsAssigned() {
					actions = append(actions, game.AssignStaff{StaffID: m.ID})
				}
			}
			return actions, nil
		}
		return []game.Action{game.AssignStaff{StaffID: pickStaff(s, step.Target, isIdle)}}, nil
	case VerbUnassign:
		if step.Target == TargetAll {
			var actions []game.Action
			for _, m := range s.Staff.Members() {
				if m.IsAssigned() {
					actions = append(actions, game.UnassignStaff{StaffID: m.ID})
				}
			}
			return actions, nil
		}
		return []game.Action{game.UnassignStaff{StaffID: pickStaff(s, step.Target, staff.Member.IsAssigned)}}, nil
	case VerbRest:
		return []game.Action{game.ToggleStaffRest{StaffID: pickStaff(s, step.Target, isIdleOrResting)}}, nil
	case VerbTrain:
		return []game.Action{game.SendStaffToTraining{StaffID: pickStaff(s, step.Target, isIdle), CourseID: step.Course}}, nil
	case VerbPractice:
		return []game.Action{game.StartStaffPractice{StaffID: pickStaff(s, step.Target, isIdle), Days: step.Days}}, nil
	case VerbStart:
		id := step.Target
		if id == "" || id == TargetFirst {
			id = ""
			if len(s.AvailableProjects) > 0 {
				id = s.AvailableProjects[0].ID
			}
		}
		return []game.Action{game.StartProject{ProjectID: id}}, nil
	case VerbFocus:
		return []game.Action{game.SetFocus{
			Performance:  step.Focus.Performance,
			SoundCapture: step.Focus.SoundCapture,
			Layering:     step.Focus.Layering,
		}}, nil
	case VerbWork:
		return []game.Action{game.PerformWork{}}, nil
	case VerbAdvance:
		return []game.Action{game.AdvanceStage{}}, nil
	case VerbDay:
		days := step.Days
		if days < 1 {
			days = 1
		}
		actions := make([]game.Action, days)
		for i := range actions {
			actions[i] = game.AdvanceDay{}
		}
		return actions, nil
	case VerbDismiss:
		return []game.Action{game.MinigameDismissed{}}, nil
	case VerbSpendAttribute:
		return []game.Action{game.SpendAttributePoint{Attribute: step.Attribute}}, nil
	case VerbSpendPerk:
		return []game.Action{game.SpendPerkPoint{Attribute: step.Attribute}}, nil
	case VerbBuy:
		return []game.Action{game.PurchaseEquipment{EquipmentID: step.Target}}, nil
	case VerbAddXP:
		return []game.Action{game.AddXP{Amount: step.Amount}}, nil
	default:
		return nil, fmt.Errorf("verb %q cannot be resolved to an action", step.Do)
	}
}

// pickCandidate resolves a hire target. "best" ranks candidates against the
// active project's genre, or the first offered project's genre.
func (e *Executor) pickCandidate(ctx context.Context, s *game.State, target string) (string, error) {
	members := s.Candidates.Members()
	switch target {
	case "", TargetFirst:
		if len(members) == 0 {
			return "", nil
		}
		return members[0].ID, nil
	case TargetBest:
		genre := ""
		switch {
		case s.ActiveProject != nil:
			genre = s.ActiveProject.Genre
		case len(s.AvailableProjects) > 0:
			genre = s.AvailableProjects[0].Genre
		}
		if genre == "" || len(members) == 0 {
			return e.pickCandidate(ctx, s, TargetFirst)
		}
		resp, err := e.mediator.Send(ctx, &studioQueries.RankStaffQuery{Genre: genre, Candidates: true})
		if err != nil {
			return "", err
		}
		ranked := resp.(*studioQueries.RankStaffResponse)
		if len(ranked.Rankings) == 0 {
			return "", nil
		}
		return ranked.Rankings[0].StaffID, nil
	default:
		return target, nil
	}
}

func isIdle(m staff.Member) bool { return m.Status == staff.StatusIdle && !m.IsAssigned() }

func isIdleOrResting(m staff.Member) bool {
	return m.Status == staff.StatusResting || isIdle(m)
}

// pickStaff resolves "first" (or an empty target) to the first hired member
// matching ok; anything else is taken as a literal ID.
func pickStaff(s *game.State, target string, ok func(staff.Member) bool) string {
	if target != "" && target != TargetFirst {
		return target
	}
	for _, m := range s.Staff.Members() {
		if ok(m) {
			return m.ID
		}
	}
	return ""
}

func (e *Executor) applyRecommendedFocus(ctx context.Context, report *Report, index int) error {
	resp, err := e.mediator.Send(ctx, &studioQueries.RecommendFocusQuery{})
	if err != nil {
		// Without an active project there is nothing to recommend
		report.Results = append(report.Results, StepResult{Step: index, Action: string(VerbRecommend), Rejected: true, Reason: err.Error()})
		report.Rejected++
		return nil
	}
	rec := resp.(*studioQueries.RecommendFocusResponse)
	_, err = e.dispatch(ctx, report, index, game.SetFocus{
		Performance:  rec.Optimal.Performance,
		SoundCapture: rec.Optimal.SoundCapture,
		Layering:     rec.Optimal.Layering,
	})
	return err
}

func (e *Executor) playMinigame(ctx context.Context, report *Report, index int) error {
	resp, err := e.mediator.Send(ctx, &studioCommands.PlayMinigameCommand{})
	if err != nil {
		return err
	}
	played := resp.(*studioCommands.PlayMinigameResponse)
	if played.Result != nil {
		e.record(report, index, "PlayMinigame", played.Result)
	}
	return nil
}

// finish drives the active project to settlement: advance finished stages,
// play offered minigames, work while sessions remain, otherwise end the day.
func (e *Executor) finish(ctx context.Context, report *Report, index int) error {
	for round := 0; round < maxFinishRounds; round++ {
		s, err := e.state(ctx)
		if err != nil {
			return err
		}
		if s.ActiveProject == nil {
			return nil
		}

		if stage, ok := s.ActiveProject.CurrentStage(); ok && stage.ThresholdMet() {
			if _, err := e.dispatch(ctx, report, index, game.AdvanceStage{}); err != nil {
				return err
			}
			continue
		}

		if _, _, eligible := s.MinigameOffer(); eligible {
			if err := e.playMinigame(ctx, report, index); err != nil {
				return err
			}
			continue
		}

		if s.Player.RemainingSessions() > 0 {
			resp, err := e.dispatch(ctx, report, index, game.PerformWork{})
			if err != nil {
				return err
			}
			if !resp.Rejected {
				continue
			}
		}
		if _, err := e.dispatch(ctx, report, index, game.AdvanceDay{}); err != nil {
			return err
		}
	}
	return fmt.Errorf("project did not finish within %d rounds", maxFinishRounds)
}

func (e *Executor) dispatch(ctx context.Context, report *Report, index int, action game.Action) (*studioCommands.DispatchActionResponse, error) {
	resp, err := e.mediator.Send(ctx, &studioCommands.DispatchActionCommand{Action: action})
	if err != nil {
		return nil, err
	}
	result := resp.(*studioCommands.DispatchActionResponse)
	e.record(report, index, action.Name(), result)
	return result, nil
}

func (e *Executor) record(report *Report, index int, action string, resp *studioCommands.DispatchActionResponse) {
	r := StepResult{Step: index, Action: action, Rejected: resp.Rejected, Events: resp.Events}
	if resp.Rejected {
		report.Rejected++
		if resp.Reason != nil {
			r.Reason = resp.Reason.Error()
		}
	} else {
		report.Applied++
	}
	report.Results = append(report.Results, r)
	if e.OnResult != nil {
		e.OnResult(r)
	}
}

func (e *Executor) state(ctx context.Context) (*game.State, error) {
	resp, err := e.mediator.Send(ctx, &studioQueries.GetStateQuery{})
	if err != nil {
		return nil, err
	}
	return resp.(*studioQueries.GetStateResponse).State, nil
}
