package game

import (
	"github.com/andrescamacho/studiosim-go/internal/domain/notification"
	"github.com/andrescamacho/studiosim-go/internal/domain/progression"
	"github.com/andrescamacho/studiosim-go/internal/domain/shared"
	"github.com/andrescamacho/studiosim-go/internal/domain/staff"
)

// hireStaff moves a candidate into the roster for a signing fee. A candidate
// no longer in the pool makes the action a no-op.
func (r *reduction) hireStaff(act HireStaff) error {
	candidate, ok := r.state.Candidates.Find(act.CandidateID)
	if !ok {
		return nil
	}
	fee := candidate.Salary * r.state.Rules.SigningFeeMultiplier
	if err := r.requireFunds(fee); err != nil {
		return err
	}

	pool, hired, _ := r.state.Candidates.Remove(candidate.ID)
	hired.Status = staff.StatusIdle
	hired.AssignedProjectID = ""
	if hired.LevelInRole < 1 {
		hired.LevelInRole = 1
	}

	r.state.Candidates = pool
	r.state.Staff = r.state.Staff.Add(hired)
	if fee > 0 {
		r.record(r.state.spend(MovementSigningFee, fee, "Signing fee for "+hired.Name, "staff", hired.ID))
	}
	r.emit(notification.KindStaffHired, "Staff Hired", "%s joined as %s", hired.Name, hired.Role)
	return nil
}

func (r *reduction) assignStaff(act AssignStaff) error {
	roster, err := r.state.Staff.Assign(act.StaffID, r.state.ActiveProjectID())
	if err != nil {
		return err
	}
	r.state.Staff = roster
	return nil
}

func (r *reduction) unassignStaff(act UnassignStaff) error {
	roster, err := r.state.Staff.Unassign(act.StaffID)
	if err != nil {
		return err
	}
	r.state.Staff = roster
	return nil
}

func (r *reduction) toggleStaffRest(act ToggleStaffRest) error {
	roster, _, err := r.state.Staff.ToggleRest(act.StaffID)
	if err != nil {
		return err
	}
	r.state.Staff = roster
	return nil
}

func (r *reduction) addStaffXP(act AddStaffXP) error {
	if act.Amount < 0 {
		return shared.NewValidationError("amount", "xp cannot be negative")
	}
	return r.grantStaffXP(act.StaffID, act.Amount)
}

func (r *reduction) grantStaffXP(id string, amount int) error {
	roster, levels, err := r.state.Staff.AddXP(id, amount)
	if err != nil {
		return err
	}
	r.state.Staff = roster
	if levels > 0 {
		m, _ := roster.Find(id)
		r.emit(notification.KindStaffLevelUp, "Staff Level Up", "%s reached %s level %d", m.Name, m.Role, m.LevelInRole)
	}
	return nil
}

func (r *reduction) sendStaffToTraining(act SendStaffToTraining) error {
	if r.state.Player.Level < progression.TrainingUnlockLevel {
		return shared.NewFeatureLockedError("staff training", progression.TrainingUnlockLevel)
	}
	course, ok := r.state.Catalog.FindCourse(act.CourseID)
	if !ok {
		return shared.NewNotFoundError("course", act.CourseID)
	}
	if err := r.requireUnlocked(course.Name, course.ID); err != nil {
		return err
	}
	m, ok := r.state.Staff.Find(act.StaffID)
	if !ok {
		return shared.NewNotFoundError("staff", act.StaffID)
	}
	if m.Status != staff.StatusIdle {
		return shared.NewStaffBusyError(m.ID, m.Status.String())
	}
	if err := r.requireFunds(course.Cost); err != nil {
		return err
	}

	roster, err := r.state.Staff.StartTraining(m.ID, course.Plan(r.state.Day))
	if err != nil {
		return err
	}
	r.state.Staff = roster
	if course.Cost > 0 {
		r.record(r.state.spend(MovementTraining, course.Cost, m.Name+" enrolled in "+course.Name, "course", course.ID))
	}
	r.emit(notification.KindTrainingStarted, "Training Started", "%s will complete %s in %d days", m.Name, course.Name, course.Duration)
	return nil
}

func (r *reduction) startStaffPractice(act StartStaffPractice) error {
	if act.Days < 1 {
		return shared.NewValidationError("days", "practice must last at least one day")
	}
	roster, err := r.state.Staff.StartPractice(act.StaffID, r.state.Day, r.state.Day+act.Days)
	if err != nil {
		return err
	}
	r.state.Staff = roster
	return nil
}

func (r *reduction) offerCandidates(act OfferCandidates) error {
	pool := r.state.Candidates
	for _, c := range act.Candidates {
		if c.ID == "" {
			return shared.NewValidationError("candidate", "candidate id is required")
		}
		if !c.Role.IsValid() {
			return shared.NewValidationError("role", "invalid role "+c.Role.String())
		}
		if _, hired := r.state.Staff.Find(c.ID); hired {
			continue
		}
		pool = pool.Add(c)
	}
	r.state.Candidates = pool
	return nil
}
