package game

import (
	"math"
	"strings"

	"github.com/andrescamacho/studiosim-go/internal/domain/catalog"
	"github.com/andrescamacho/studiosim-go/internal/domain/focus"
	"github.com/andrescamacho/studiosim-go/internal/domain/notification"
	"github.com/andrescamacho/studiosim-go/internal/domain/progression"
	"github.com/andrescamacho/studiosim-go/internal/domain/project"
	"github.com/andrescamacho/studiosim-go/internal/domain/scoring"
	"github.com/andrescamacho/studiosim-go/internal/domain/shared"
	"github.com/andrescamacho/studiosim-go/internal/domain/staff"
)

// playerContributionScale is the output of a fully focused axis at attribute
// level 1.
const playerContributionScale = 5

func (r *reduction) offerProjects(act OfferProjects) error {
	for _, p := range act.Projects {
		if err := p.Validate(); err != nil {
			return err
		}
		if p.Status == "" {
			p.Status = project.StatusPending
		}
		if p.Status != project.StatusPending {
			return shared.NewValidationError("status", "only pending projects can be offered")
		}
		if _, _, dup := r.state.FindAvailableProject(p.ID); dup || r.state.ActiveProjectID() == p.ID {
			continue
		}
		r.state.AvailableProjects = append(r.state.AvailableProjects, p.Clone())
	}
	return nil
}

func (r *reduction) startProject(act StartProject) error {
	if r.state.ActiveProject != nil {
		return shared.NewValidationError("project", "finish "+r.state.ActiveProject.Name+" before starting another project")
	}
	p, idx, ok := r.state.FindAvailableProject(act.ProjectID)
	if !ok {
		return shared.NewNotFoundError("project", act.ProjectID)
	}
	active, err := p.Activate(r.state.Day)
	if err != nil {
		return err
	}

	pool := make([]project.Project, 0, len(r.state.AvailableProjects)-1)
	pool = append(pool, r.state.AvailableProjects[:idx]...)
	pool = append(pool, r.state.AvailableProjects[idx+1:]...)
	r.state.AvailableProjects = pool
	r.state.ActiveProject = &active
	r.emit(notification.KindProjectStarted, "Project Started", "%s (%s) is now in production", active.Name, active.Genre)
	return nil
}

func (r *reduction) setFocus(act SetFocus) error {
	alloc, err := focus.NewAllocation(act.Performance, act.SoundCapture, act.Layering)
	if err != nil {
		return err
	}
	r.state.Focus = alloc
	return nil
}

// workMultiplier is the focus multiplier for the active stage. Without a
// stage there is nothing to compare against and work counts at face value.
func (r *reduction) workMultiplier() float64 {
	optimal, ok := r.state.OptimalFocus()
	if !ok {
		return 1
	}
	return focus.Evaluate(r.state.Focus, optimal.Allocation).Multiplier
}

func (r *reduction) activeProject() (project.Project, error) {
	if r.state.ActiveProject == nil {
		return project.Project{}, shared.NewNoActiveProjectError()
	}
	return *r.state.ActiveProject, nil
}

// performWork runs one work session for the player and the assigned team.
// Once the current stage is done the session is not spent; the stage has to
// be advanced first.
func (r *reduction) performWork() error {
	p, err := r.activeProject()
	if err != nil {
		return err
	}
	if current, ok := p.CurrentStage(); !ok || current.ThresholdMet() {
		return nil
	}
	player, err := r.state.Player.UseWorkSession()
	if err != nil {
		return err
	}

	multiplier := r.workMultiplier()
	bonuses := r.state.Bonuses(p.Genre)
	attrs := player.Attributes

	creativity := int(math.Floor(float64(r.state.Focus.Performance) / 100 * playerContributionScale * float64(attrs.CreativeIntuition)))
	technical := int(math.Floor(float64(r.state.Focus.SoundCapture) / 100 * playerContributionScale * float64(attrs.TechnicalAptitude)))
	creativity, technical = bonuses.ApplyToWork(creativity, technical)
	p = applyPair(p, creativity, technical, project.SourcePlayer, "player", multiplier)

	team := r.state.AssignedStaff(p.ID)
	ids := make([]string, 0, len(team))
	for _, m := range team {
		c, t := bonuses.ApplyToWork(m.Contribution(p.Genre))
		p = applyPair(p, c, t, project.SourceStaff, m.ID, multiplier)
		ids = append(ids, m.ID)
	}

	r.state.Player = player
	r.state.ActiveProject = &p
	r.state.Staff = r.state.Staff.SpendWorkEnergy(ids)
	return nil
}

func applyPair(p project.Project, creativity, technical int, source project.WorkSource, sourceID string, multiplier float64) project.Project {
	p, _ = p.ApplyWork(project.WorkUnit{Type: project.WorkCreativity, Value: creativity, Source: source, SourceID: sourceID}, multiplier)
	p, _ = p.ApplyWork(project.WorkUnit{Type: project.WorkTechnical, Value: technical, Source: source, SourceID: sourceID}, multiplier)
	return p
}

func (r *reduction) addWork(act AddWork) error {
	p, err := r.activeProject()
	if err != nil {
		return err
	}
	if act.Type != project.WorkCreativity && act.Type != project.WorkTechnical {
		return shared.NewValidationError("type", "unknown work type "+string(act.Type))
	}
	if act.Value < 0 {
		return shared.NewValidationError("value", "work value cannot be negative")
	}
	source := act.Source
	if source == "" {
		source = project.SourcePlayer
	}
	p, _ = p.ApplyWork(project.WorkUnit{Type: act.Type, Value: act.Value, Source: source, SourceID: act.SourceID}, r.workMultiplier())
	r.state.ActiveProject = &p
	return nil
}

// advanceStage closes the current stage when its work is done and settles the
// project after the last one. Below the threshold nothing changes.
func (r *reduction) advanceStage() error {
	p, err := r.activeProject()
	if err != nil {
		return err
	}

	bonuses := r.state.Bonuses(p.Genre).StageBonuses().Add(scoring.PointsSynergy(p.CreativityPoints, p.TechnicalPoints))
	next, out := project.AdvanceStage(p, bonuses)
	if !out.Advanced {
		return nil
	}

	r.emit(notification.KindStageComplete, "Stage Complete", "%s finished %s (quality %d, efficiency %d)", next.Name, out.StageName, out.Quality, out.Efficiency)
	if !out.Completed {
		r.state.ActiveProject = &next
		if key, ok := r.state.CurrentStageKey(); ok {
			r.state.Minigames = r.state.Minigames.Invalidate(key)
		}
		return nil
	}

	return r.settle(next, out.Settlement)
}

// settle applies the one-shot rewards of a completed project. Business acumen
// scales the payout before it is booked.
func (r *reduction) settle(p project.Project, s scoring.Settlement) error {
	s.Payout = int(math.Floor(float64(s.Payout) * r.state.Player.Attributes.Multiplier(progression.BusinessAcumen)))
	if s.Payout > 0 {
		r.record(r.state.move(MovementPayout, s.Payout, "Payout for "+p.Name, "project", p.ID))
	}
	r.state.Reputation += s.RepGain
	r.grantPlayerXP(s.XPGain)

	for _, m := range r.state.AssignedStaff(p.ID) {
		if err := r.grantStaffXP(m.ID, s.XPGain/2); err != nil {
			return err
		}
	}
	r.state.Staff = r.state.Staff.UnassignProject(p.ID)
	r.raiseStudioSkill(p.Genre)

	r.state.CompletedProjects = append(r.state.CompletedProjects, p)
	r.state.ActiveProject = nil
	r.state.Minigames = r.state.Minigames.Dismiss()
	r.emit(notification.KindProjectCompleted, "Project Completed", "%s scored %d: earned $%d, +%d reputation, +%d XP", p.Name, s.FinalScore, s.Payout, s.RepGain, s.XPGain)
	return nil
}

func (r *reduction) raiseStudioSkill(genre string) {
	key := genre
	for g := range r.state.StudioSkills {
		if strings.EqualFold(g, genre) {
			key = g
			break
		}
	}
	level := catalog.StudioSkillLevel(r.state.StudioSkills, genre)
	if level < catalog.MaxStudioSkillLevel {
		r.state.StudioSkills[key] = level + 1
	}
}

// advanceDay moves the calendar forward one day.
func (r *reduction) advanceDay() error {
	r.state.Day++
	roster, out := r.state.Staff.AdvanceDay(r.state.Day)
	r.state.Staff = roster
	r.state.Player = r.state.Player.StartDay()

	for _, m := range out.TrainingCompleted {
		r.emit(notification.KindTrainingComplete, "Training Complete", "%s is back from training", m.Name)
	}
	for _, m := range out.PracticeCompleted {
		r.emit(notification.KindPracticeComplete, "Practice Complete", "%s finished practicing", m.Name)
		if levels := out.LevelUps[m.ID]; levels > 0 {
			r.emit(notification.KindStaffLevelUp, "Staff Level Up", "%s reached %s level %d", m.Name, m.Role, m.LevelInRole)
		}
	}

	if r.state.Day%r.state.Rules.SalaryIntervalDays == 0 {
		r.paySalaries(roster)
	}
	return nil
}

func (r *reduction) paySalaries(roster staff.Roster) {
	total := roster.TotalSalary()
	if total <= 0 {
		return
	}
	if r.state.Money < total {
		r.emit(notification.KindInsufficientFunds, "Salaries Unpaid", "Salaries of $%d are due but only $%d is available", total, r.state.Money)
		return
	}
	r.record(r.state.spend(MovementSalaries, total, "Staff salaries", "roster", ""))
	r.emit(notification.KindSalariesPaid, "Salaries Paid", "Paid $%d to %d staff", total, roster.Len())
}
