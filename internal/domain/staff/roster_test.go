package staff_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/studiosim-go/internal/domain/shared"
	"github.com/andrescamacho/studiosim-go/internal/domain/staff"
)

func member(id string, role staff.Role) staff.Member {
	return staff.Member{
		ID:          id,
		Name:        id,
		Role:        role,
		Status:      staff.StatusIdle,
		Energy:      80,
		Stats:       staff.Stats{Creativity: 50, Technical: 50, Speed: 50},
		LevelInRole: 1,
		Salary:      100,
	}
}

func TestAssign_ThenUnassignRoundTrip(t *testing.T) {
	// Arrange
	r := staff.NewRoster(member("a", staff.RoleProducer))

	// Act
	assigned, err := r.Assign("a", "p1")
	require.NoError(t, err)
	released, err := assigned.Unassign("a")
	require.NoError(t, err)

	// Assert
	m, _ := assigned.Find("a")
	assert.Equal(t, staff.StatusWorking, m.Status)
	assert.Equal(t, "p1", m.AssignedProjectID)

	m, _ = released.Find("a")
	assert.Equal(t, staff.StatusIdle, m.Status)
	assert.Empty(t, m.AssignedProjectID)

	original, _ := r.Find("a")
	assert.Equal(t, staff.StatusIdle, original.Status, "receiver must not be mutated")
}

func TestAssign_RoleSlotFilled(t *testing.T) {
	r := staff.NewRoster(member("a", staff.RoleProducer), member("b", staff.RoleProducer))
	r, err := r.Assign("a", "p1")
	require.NoError(t, err)

	next, err := r.Assign("b", "p1")

	var filled *shared.RoleSlotFilledError
	require.True(t, errors.As(err, &filled))
	assert.Equal(t, "Producer", filled.Role)
	assert.Equal(t, r, next)
	assert.Len(t, next.AssignedTo("p1"), 1)
}

func TestAssign_DifferentRolesShareProject(t *testing.T) {
	r := staff.NewRoster(member("a", staff.RoleProducer), member("b", staff.RoleEngineer))

	r, err := r.Assign("a", "p1")
	require.NoError(t, err)
	r, err = r.Assign("b", "p1")
	require.NoError(t, err)

	assert.Len(t, r.AssignedTo("p1"), 2)
}

func TestAssign_Preconditions(t *testing.T) {
	resting := member("r", staff.RoleEngineer)
	resting.Status = staff.StatusResting
	r := staff.NewRoster(member("a", staff.RoleProducer), resting)

	_, err := r.Assign("a", "")
	var noProject *shared.NoActiveProjectError
	assert.True(t, errors.As(err, &noProject))

	_, err = r.Assign("r", "p1")
	var busy *shared.StaffBusyError
	assert.True(t, errors.As(err, &busy))

	_, err = r.Assign("ghost", "p1")
	var notFound *shared.NotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestToggleRest(t *testing.T) {
	r := staff.NewRoster(member("a", staff.RoleProducer))

	r, status, err := r.ToggleRest("a")
	require.NoError(t, err)
	assert.Equal(t, staff.StatusResting, status)

	r, status, err = r.ToggleRest("a")
	require.NoError(t, err)
	assert.Equal(t, staff.StatusIdle, status)

	r, err = r.Assign("a", "p1")
	require.NoError(t, err)
	_, _, err = r.ToggleRest("a")
	var busy *shared.StaffBusyError
	assert.True(t, errors.As(err, &busy))
}

func TestAddXP_LoopsMultipleLevels(t *testing.T) {
	r := staff.NewRoster(member("a", staff.RoleProducer))

	// level 1 needs 50, level 2 needs 100: 50+100+10
	r, levels, err := r.AddXP("a", 160)

	require.NoError(t, err)
	assert.Equal(t, 2, levels)
	m, _ := r.Find("a")
	assert.Equal(t, 3, m.LevelInRole)
	assert.Equal(t, 10, m.XPInRole)
	assert.Equal(t, staff.Stats{Creativity: 54, Technical: 54, Speed: 54}, m.Stats)
	assert.Equal(t, 150, m.XPToNextLevel())
}

func TestAddXP_BelowThreshold(t *testing.T) {
	r := staff.NewRoster(member("a", staff.RoleProducer))

	r, levels, err := r.AddXP("a", 49)

	require.NoError(t, err)
	assert.Zero(t, levels)
	m, _ := r.Find("a")
	assert.Equal(t, 1, m.LevelInRole)
	assert.Equal(t, 49, m.XPInRole)
}

func TestStartTraining_RequiresIdle(t *testing.T) {
	r := staff.NewRoster(member("a", staff.RoleEngineer))
	plan := staff.TrainingPlan{CourseID: "mixing", EndDay: 5, Boost: staff.Stats{Technical: 10}, SkillGenre: "rock", SkillGain: 5}

	r, err := r.StartTraining("a", plan)
	require.NoError(t, err)

	_, err = r.StartTraining("a", plan)
	var busy *shared.StaffBusyError
	assert.True(t, errors.As(err, &busy))
}

func TestAdvanceDay_CompletesTraining(t *testing.T) {
	r := staff.NewRoster(member("a", staff.RoleEngineer))
	r, err := r.StartTraining("a", staff.TrainingPlan{CourseID: "mixing", EndDay: 3, Boost: staff.Stats{Technical: 10}, SkillGenre: "rock", SkillGain: 5})
	require.NoError(t, err)

	r, out := r.AdvanceDay(2)
	m, _ := r.Find("a")
	assert.Equal(t, staff.StatusTraining, m.Status)
	assert.Empty(t, out.TrainingCompleted)

	r, out = r.AdvanceDay(3)
	m, _ = r.Find("a")
	assert.Equal(t, staff.StatusIdle, m.Status)
	assert.Equal(t, 60, m.Stats.Technical)
	assert.Equal(t, 5, m.Skills["rock"])
	assert.Nil(t, m.Training)
	require.Len(t, out.TrainingCompleted, 1)
}

func TestAdvanceDay_EnergyRule(t *testing.T) {
	idle := member("idle", staff.RoleEngineer)
	idle.Energy = 95
	resting := member("rest", staff.RoleProducer)
	resting.Status = staff.StatusResting
	resting.Energy = 10
	working := member("work", staff.RoleSongwriter)
	working.Status = staff.StatusWorking
	working.Energy = 3
	training := member("train", staff.RoleEngineer)
	training.Status = staff.StatusTraining
	training.Training = &staff.TrainingPlan{EndDay: 99}
	training.Energy = 40

	r, _ := staff.NewRoster(idle, resting, working, training).AdvanceDay(1)

	energy := func(id string) int {
		m, _ := r.Find(id)
		return m.Energy
	}
	assert.Equal(t, 100, energy("idle"))
	assert.Equal(t, 40, energy("rest"))
	assert.Equal(t, 0, energy("work"))
	assert.Equal(t, 40, energy("train"))
}

func TestPractice_CompletesWithXP(t *testing.T) {
	r := staff.NewRoster(member("a", staff.RoleProducer))

	r, err := r.StartPractice("a", 1, 3)
	require.NoError(t, err)

	_, err = r.StartPractice("a", 1, 3)
	var busy *shared.StaffBusyError
	assert.True(t, errors.As(err, &busy))

	r, out := r.AdvanceDay(3)
	m, _ := r.Find("a")
	assert.Equal(t, staff.StatusIdle, m.Status)
	assert.Equal(t, 30, m.XPInRole)
	assert.Len(t, out.PracticeCompleted, 1)
}

func TestRemove_And_Add(t *testing.T) {
	r := staff.NewRoster(member("a", staff.RoleProducer), member("b", staff.RoleEngineer))

	next, removed, ok := r.Remove("a")
	require.True(t, ok)
	assert.Equal(t, "a", removed.ID)
	assert.Equal(t, 1, next.Len())
	assert.Equal(t, 2, r.Len())

	_, _, ok = next.Remove("a")
	assert.False(t, ok)

	assert.Equal(t, 2, next.Add(removed).Len())
	assert.Equal(t, 1, next.Add(member("b", staff.RoleEngineer)).Len())
}

func TestContribution(t *testing.T) {
	m := member("a", staff.RoleProducer)
	m.Stats = staff.Stats{Creativity: 80, Technical: 60}
	m.GenreAffinity = staff.GenreAffinity{Genre: "Rock", Bonus: 50}

	c, tech := m.Contribution("pop")
	assert.Equal(t, 12, c)
	assert.Equal(t, 9, tech)

	c, tech = m.Contribution("rock")
	assert.Equal(t, 18, c)
	assert.Equal(t, 13, tech)

	m.Energy = 10
	c, tech = m.Contribution("pop")
	assert.Equal(t, 2, c)
	assert.Equal(t, 1, tech)
}

func TestSpendWorkEnergy(t *testing.T) {
	r := staff.NewRoster(member("a", staff.RoleProducer))

	r = r.SpendWorkEnergy([]string{"a", "missing"})

	m, _ := r.Find("a")
	assert.Equal(t, 70, m.Energy)
}
