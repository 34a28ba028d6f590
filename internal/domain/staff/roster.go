package staff

import (
	"github.com/andrescamacho/studiosim-go/internal/domain/shared"
)

// Roster is an ordered, immutable collection of staff members. Every mutating
// method returns a new Roster and leaves the receiver untouched.
type Roster struct {
	members []Member
}

// NewRoster builds a roster from members, copying them.
func NewRoster(members ...Member) Roster {
	r := Roster{members: make([]Member, 0, len(members))}
	for _, m := range members {
		r.members = append(r.members, m.clone())
	}
	return r
}

// Len returns the number of members
func (r Roster) Len() int {
	return len(r.members)
}

// Members returns a copy of every member in roster order
func (r Roster) Members() []Member {
	out := make([]Member, len(r.members))
	for i, m := range r.members {
		out[i] = m.clone()
	}
	return out
}

// Find looks a member up by ID
func (r Roster) Find(id string) (Member, bool) {
	idx := r.indexOf(id)
	if idx < 0 {
		return Member{}, false
	}
	return r.members[idx].clone(), true
}

// AssignedTo returns members attached to the project, in roster order.
func (r Roster) AssignedTo(projectID string) []Member {
	if projectID == "" {
		return nil
	}
	var out []Member
	for _, m := range r.members {
		if m.AssignedProjectID == projectID {
			out = append(out, m.clone())
		}
	}
	return out
}

// Add appends a member. Adding an ID already present replaces nothing and
// returns the roster unchanged.
func (r Roster) Add(m Member) Roster {
	if r.indexOf(m.ID) >= 0 {
		return r
	}
	next := r.copyMembers()
	next = append(next, m.clone())
	return Roster{members: next}
}

// Remove takes a member out of the roster, returning it.
func (r Roster) Remove(id string) (Roster, Member, bool) {
	idx := r.indexOf(id)
	if idx < 0 {
		return r, Member{}, false
	}
	removed := r.members[idx].clone()
	next := make([]Member, 0, len(r.members)-1)
	next = append(next, r.members[:idx]...)
	next = append(next, r.members[idx+1:]...)
	return Roster{members: next}, removed, true
}

// Assign attaches an idle member to the active project. The checks run
// against this roster, so callers must pass the latest snapshot.
func (r Roster) Assign(id, activeProjectID string) (Roster, error) {
	if activeProjectID == "" {
		return r, shared.NewNoActiveProjectError()
	}
	m, err := r.lookup(id)
	if err != nil {
		return r, err
	}
	if m.Status != StatusIdle {
		return r, shared.NewStaffBusyError(id, m.Status.String())
	}
	for _, other := range r.members {
		if other.ID != id && other.AssignedProjectID == activeProjectID && other.Role == m.Role {
			return r, shared.NewRoleSlotFilledError(id, m.Role.String())
		}
	}

	m.Status = StatusWorking
	m.AssignedProjectID = activeProjectID
	return r.replace(m), nil
}

// Unassign releases a member back to Idle.
func (r Roster) Unassign(id string) (Roster, error) {
	m, err := r.lookup(id)
	if err != nil {
		return r, err
	}
	m.Status = StatusIdle
	m.AssignedProjectID = ""
	return r.replace(m), nil
}

// UnassignProject releases every member attached to the project.
func (r Roster) UnassignProject(projectID string) Roster {
	next := r
	for _, m := range r.members {
		if m.AssignedProjectID == projectID {
			next, _ = next.Unassign(m.ID)
		}
	}
	return next
}

// ToggleRest flips a member between Idle and Resting.
func (r Roster) ToggleRest(id string) (Roster, Status, error) {
	m, err := r.lookup(id)
	if err != nil {
		return r, "", err
	}
	switch m.Status {
	case StatusIdle:
		m.Status = StatusResting
	case StatusResting:
		m.Status = StatusIdle
	case StatusWorking, StatusTraining, StatusPracticing:
		return r, m.Status, shared.NewStaffBusyError(id, m.Status.String())
	default:
		return r, m.Status, shared.NewStaffBusyError(id, m.Status.String())
	}
	return r.replace(m), m.Status, nil
}

// AddXP grants in-role XP and reports how many levels were gained.
func (r Roster) AddXP(id string, amount int) (Roster, int, error) {
	m, err := r.lookup(id)
	if err != nil {
		return r, 0, err
	}
	m, levels := m.addXP(amount)
	return r.replace(m), levels, nil
}

// StartTraining sends an idle member on a course.
func (r Roster) StartTraining(id string, plan TrainingPlan) (Roster, error) {
	m, err := r.lookup(id)
	if err != nil {
		return r, err
	}
	if m.Status != StatusIdle {
		return r, shared.NewStaffBusyError(id, m.Status.String())
	}
	m.Status = StatusTraining
	m.Training = &plan
	return r.replace(m), nil
}

// StartPractice puts an idle member into minigame practice until endDay.
func (r Roster) StartPractice(id string, startDay, endDay int) (Roster, error) {
	m, err := r.lookup(id)
	if err != nil {
		return r, err
	}
	if m.Status != StatusIdle {
		return r, shared.NewStaffBusyError(id, m.Status.String())
	}
	if endDay <= startDay {
		return r, shared.NewValidationError("days", "practice must last at least one day")
	}
	m.Status = StatusPracticing
	m.PracticeStartDay = startDay
	m.PracticeEndDay = endDay
	return r.replace(m), nil
}

// SpendWorkEnergy charges a work session to each listed member.
func (r Roster) SpendWorkEnergy(ids []string) Roster {
	next := r
	for _, id := range ids {
		if m, ok := next.Find(id); ok {
			next = next.replace(m.withEnergy(-workEnergyCost))
		}
	}
	return next
}

// DayOutcome reports what finished during a day advance.
type DayOutcome struct {
	TrainingCompleted []Member
	PracticeCompleted []Member
	LevelUps          map[string]int
}

// AdvanceDay applies the daily energy rule, then finishes training and
// practice whose end day has been reached.
func (r Roster) AdvanceDay(day int) (Roster, DayOutcome) {
	out := DayOutcome{LevelUps: map[string]int{}}
	next := make([]Member, 0, len(r.members))

	for _, original := range r.members {
		m := original.clone().withEnergy(original.Status.dailyEnergyDelta())

		switch m.Status {
		case StatusTraining:
			if m.Training != nil && day >= m.Training.EndDay {
				plan := *m.Training
				m.Stats = m.Stats.Add(plan.Boost)
				if plan.SkillGenre != "" && plan.SkillGain > 0 {
					if m.Skills == nil {
						m.Skills = map[string]int{}
					}
					m.Skills[plan.SkillGenre] += plan.SkillGain
				}
				m.Training = nil
				m.Status = StatusIdle
				out.TrainingCompleted = append(out.TrainingCompleted, m.clone())
			}
		case StatusPracticing:
			if day >= m.PracticeEndDay {
				days := m.PracticeEndDay - m.PracticeStartDay
				var levels int
				m, levels = m.addXP(days * practiceXPPerDay)
				if levels > 0 {
					out.LevelUps[m.ID] = levels
				}
				m.Status = StatusIdle
				m.PracticeStartDay, m.PracticeEndDay = 0, 0
				out.PracticeCompleted = append(out.PracticeCompleted, m.clone())
			}
		case StatusIdle, StatusWorking, StatusResting:
		}

		next = append(next, m)
	}
	return Roster{members: next}, out
}

// TotalSalary sums the salary of every member.
func (r Roster) TotalSalary() int {
	total := 0
	for _, m := range r.members {
		total += m.Salary
	}
	return total
}

func (r Roster) lookup(id string) (Member, error) {
	m, ok := r.Find(id)
	if !ok {
		return Member{}, shared.NewNotFoundError("staff", id)
	}
	return m, nil
}

func (r Roster) indexOf(id string) int {
	for i, m := range r.members {
		if m.ID == id {
			return i
		}
	}
	return -1
}

func (r Roster) copyMembers() []Member {
	out := make([]Member, len(r.members), len(r.members)+1)
	copy(out, r.members)
	return out
}

// replace swaps in an updated member, copying the backing slice.
func (r Roster) replace(m Member) Roster {
	idx := r.indexOf(m.ID)
	if idx < 0 {
		return r
	}
	next := r.copyMembers()
	next[idx] = m
	return Roster{members: next}
}
