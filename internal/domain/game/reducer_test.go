package game_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/studiosim-go/internal/domain/catalog"
	"github.com/andrescamacho/studiosim-go/internal/domain/focus"
	"github.com/andrescamacho/studiosim-go/internal/domain/game"
	"github.com/andrescamacho/studiosim-go/internal/domain/minigame"
	"github.com/andrescamacho/studiosim-go/internal/domain/notification"
	"github.com/andrescamacho/studiosim-go/internal/domain/project"
	"github.com/andrescamacho/studiosim-go/internal/domain/shared"
	"github.com/andrescamacho/studiosim-go/internal/domain/staff"
)

func newState(money int) *game.State {
	return game.NewState(game.Setup{
		Money:   money,
		Catalog: catalog.Default(),
		Rules:   game.DefaultRules(),
	})
}

func member(id string, role staff.Role, salary int) staff.Member {
	return staff.Member{
		ID:          id,
		Name:        id,
		Role:        role,
		Status:      staff.StatusIdle,
		Energy:      80,
		Stats:       staff.Stats{Creativity: 60, Technical: 60, Speed: 40},
		LevelInRole: 1,
		Salary:      salary,
	}
}

func job(id string, stages ...project.Stage) project.Project {
	return project.Project{
		ID:          id,
		Name:        "Single " + id,
		Genre:       "rock",
		Difficulty:  2,
		PayoutBase:  1000,
		RepGainBase: 10,
		Status:      project.StatusPending,
		Stages:      stages,
	}
}

func stage(name string, required, completed int, trigger string) project.Stage {
	status := project.StagePending
	if completed > 0 {
		status = project.StageInProgress
	}
	if completed >= required {
		status = project.StageCompleted
	}
	return project.Stage{
		Name:               name,
		WorkUnitsRequired:  required,
		WorkUnitsCompleted: completed,
		MinigameTriggerID:  trigger,
		Status:             status,
	}
}

func dispatch(t *testing.T, s *game.State, a game.Action) game.Result {
	t.Helper()
	res, err := game.Reduce(s, a)
	require.NoError(t, err, a.Name())
	return res
}

// withActiveProject offers p and starts it.
func withActiveProject(t *testing.T, s *game.State, p project.Project) *game.State {
	t.Helper()
	s = dispatch(t, s, game.OfferProjects{Projects: []project.Project{p}}).State
	return dispatch(t, s, game.StartProject{ProjectID: p.ID}).State
}

func kinds(events []game.Event) []notification.Kind {
	out := make([]notification.Kind, 0, len(events))
	for _, e := range events {
		out = append(out, e.Kind)
	}
	return out
}

func TestHireStaff_SecondHireIsNoOp(t *testing.T) {
	// Arrange
	s := newState(1000)
	s = dispatch(t, s, game.OfferCandidates{Candidates: []staff.Member{member("c1", staff.RoleEngineer, 100)}}).State

	// Act
	first := dispatch(t, s, game.HireStaff{CandidateID: "c1"})
	second := dispatch(t, first.State, game.HireStaff{CandidateID: "c1"})

	// Assert
	assert.Equal(t, 800, first.State.Money)
	assert.Equal(t, 1, first.State.Staff.Len())
	assert.Equal(t, 0, first.State.Candidates.Len())
	assert.Equal(t, []notification.Kind{notification.KindStaffHired}, kinds(first.Events))
	require.Len(t, first.Movements, 1)
	assert.Equal(t, game.MovementSigningFee, first.Movements[0].Kind)
	assert.Equal(t, -200, first.Movements[0].Amount)
	assert.Equal(t, 1000, first.Movements[0].BalanceBefore)
	assert.Equal(t, 800, first.Movements[0].BalanceAfter)

	assert.Equal(t, 800, second.State.Money)
	assert.Equal(t, 1, second.State.Staff.Len())
	assert.Empty(t, second.Events)
	assert.Empty(t, second.Movements)

	assert.Equal(t, 1, s.Candidates.Len(), "input snapshot must not change")
}

func TestHireStaff_InsufficientFunds(t *testing.T) {
	s := newState(150)
	s = dispatch(t, s, game.OfferCandidates{Candidates: []staff.Member{member("c1", staff.RoleEngineer, 100)}}).State

	res, err := game.Reduce(s, game.HireStaff{CandidateID: "c1"})

	var funds *shared.InsufficientFundsError
	require.True(t, errors.As(err, &funds))
	assert.Equal(t, 200, funds.Required)
	assert.Equal(t, 150, funds.Available)
	assert.Same(t, s, res.State)
	assert.Equal(t, 1, s.Candidates.Len())
	assert.Equal(t, notification.KindInsufficientFunds, notification.FromError(err, s.Day).Kind)
}

func TestAssignStaff_RoleSlotFilledLeavesStateUnchanged(t *testing.T) {
	// Arrange
	s := newState(1000)
	s.Staff = staff.NewRoster(member("a", staff.RoleProducer, 100), member("b", staff.RoleProducer, 100))
	s = withActiveProject(t, s, job("p1", stage("Recording", 100, 0, "")))
	s = dispatch(t, s, game.AssignStaff{StaffID: "a"}).State

	// Act
	res, err := game.Reduce(s, game.AssignStaff{StaffID: "b"})

	// Assert
	var filled *shared.RoleSlotFilledError
	require.True(t, errors.As(err, &filled))
	assert.Same(t, s, res.State)
	team := s.AssignedStaff("p1")
	require.Len(t, team, 1)
	assert.Equal(t, "a", team[0].ID)
	b, _ := s.Staff.Find("b")
	assert.Equal(t, staff.StatusIdle, b.Status)
}

func TestAssignStaff_RequiresActiveProject(t *testing.T) {
	s := newState(1000)
	s.Staff = staff.NewRoster(member("a", staff.RoleProducer, 100))

	_, err := game.Reduce(s, game.AssignStaff{StaffID: "a"})

	var noProject *shared.NoActiveProjectError
	assert.True(t, errors.As(err, &noProject))
}

func TestAssignThenUnassign_RoundTrip(t *testing.T) {
	s := newState(1000)
	s.Staff = staff.NewRoster(member("a", staff.RoleEngineer, 100))
	s = withActiveProject(t, s, job("p1", stage("Recording", 100, 10, "")))
	before := s.ActiveProject.Clone()

	assigned := dispatch(t, s, game.AssignStaff{StaffID: "a"}).State
	released := dispatch(t, assigned, game.UnassignStaff{StaffID: "a"}).State

	m, _ := released.Staff.Find("a")
	assert.Equal(t, staff.StatusIdle, m.Status)
	assert.Empty(t, m.AssignedProjectID)
	assert.Equal(t, before, *released.ActiveProject)
}

func TestAddWork_CapsAndAdvances(t *testing.T) {
	// Arrange
	s := newState(1000)
	s = withActiveProject(t, s, job("p1",
		stage("Recording", 100, 80, ""),
		stage("Mixing", 50, 0, ""),
	))

	// Act: any focus multiplier is at least 0.5, so 40 contributes at least 20.
	worked := dispatch(t, s, game.AddWork{Type: project.WorkTechnical, Value: 40})
	advanced := dispatch(t, worked.State, game.AdvanceStage{})

	// Assert
	current, _ := worked.State.ActiveProject.CurrentStage()
	assert.Equal(t, 100, current.WorkUnitsCompleted)
	assert.True(t, current.Completed())

	assert.Equal(t, 1, advanced.State.ActiveProject.CurrentStageIndex)
	assert.Equal(t, []notification.Kind{notification.KindStageComplete}, kinds(advanced.Events))
}

func TestAdvanceStage_BelowThresholdIsIdempotent(t *testing.T) {
	s := newState(1000)
	s = withActiveProject(t, s, job("p1", stage("Recording", 100, 40, "")))

	res := dispatch(t, s, game.AdvanceStage{})

	assert.Equal(t, *s.ActiveProject, *res.State.ActiveProject)
	assert.Empty(t, res.Events)
}

func TestAdvanceStage_SettlesOnce(t *testing.T) {
	// Arrange: one stage already at its threshold, no points, no equipment.
	s := newState(1000)
	s.Staff = staff.NewRoster(member("a", staff.RoleEngineer, 100))
	s = withActiveProject(t, s, job("p1", stage("Recording", 100, 100, "")))
	s = dispatch(t, s, game.AssignStaff{StaffID: "a"}).State

	// Act
	res := dispatch(t, s, game.AdvanceStage{})
	_, again := game.Reduce(res.State, game.AdvanceStage{})

	// Assert: quality 150, efficiency 130, final 140
	st := res.State
	assert.Nil(t, st.ActiveProject)
	require.Len(t, st.CompletedProjects, 1)
	assert.True(t, st.CompletedProjects[0].Settled)
	assert.Equal(t, 2400, st.Money)
	assert.Equal(t, 14, st.Reputation)
	assert.Equal(t, 98, st.Player.XP)
	assert.Equal(t, 1, st.StudioSkills["rock"])

	m, _ := st.Staff.Find("a")
	assert.Equal(t, staff.StatusIdle, m.Status)
	assert.Empty(t, m.AssignedProjectID)
	assert.Equal(t, 49, m.XPInRole)

	require.Len(t, res.Movements, 1)
	assert.Equal(t, game.MovementPayout, res.Movements[0].Kind)
	assert.Equal(t, 1400, res.Movements[0].Amount)
	assert.Contains(t, kinds(res.Events), notification.KindProjectCompleted)

	var noProject *shared.NoActiveProjectError
	assert.True(t, errors.As(again, &noProject))
}

func TestAdvanceStage_BusinessAcumenRaisesPayout(t *testing.T) {
	settle := func(acumen int) game.Movement {
		s := newState(1000)
		s.Player.Attributes.BusinessAcumen = acumen
		s = withActiveProject(t, s, job("p1", stage("Recording", 100, 100, "")))
		res := dispatch(t, s, game.AdvanceStage{})
		require.Len(t, res.Movements, 1)
		return res.Movements[0]
	}

	base := settle(1)
	boosted := settle(3)

	assert.Equal(t, game.MovementPayout, boosted.Kind)
	assert.Equal(t, int(float64(base.Amount)*1.10), boosted.Amount)
	assert.Greater(t, boosted.Amount, base.Amount)
}

func TestSetFocus_RejectsInvalidSum(t *testing.T) {
	s := newState(1000)

	res, err := game.Reduce(s, game.SetFocus{Performance: 50, SoundCapture: 50, Layering: 10})

	var invalid *shared.InvalidFocusAllocationError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, 110, invalid.Sum)
	assert.Equal(t, focus.Balanced(), res.State.Focus)
}

func TestAddXP_LevelUp(t *testing.T) {
	s := newState(1000)
	s.Player.XP = 90

	res := dispatch(t, s, game.AddXP{Amount: 20})

	p := res.State.Player
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 10, p.XP)
	assert.Equal(t, 150, p.XPToNextLevel)
	assert.Equal(t, 1, p.PerkPoints)
	assert.Equal(t, 2, p.AttributePoints)
	assert.Equal(t, []notification.Kind{notification.KindLevelUp}, kinds(res.Events))
}

func TestSpendAttributePoint_WithoutPoints(t *testing.T) {
	s := newState(1000)

	_, err := game.Reduce(s, game.SpendAttributePoint{Attribute: "focusMastery"})

	var none *shared.NoPointsAvailableError
	assert.True(t, errors.As(err, &none))
}

func TestSendStaffToTraining(t *testing.T) {
	t.Run("locked below level three", func(t *testing.T) {
		s := newState(1000)
		s.Staff = staff.NewRoster(member("a", staff.RoleEngineer, 100))

		_, err := game.Reduce(s, game.SendStaffToTraining{StaffID: "a", CourseID: "basic_audio_engineering"})

		var locked *shared.FeatureLockedError
		assert.True(t, errors.As(err, &locked))
	})

	t.Run("completes after the course duration", func(t *testing.T) {
		s := newState(1000)
		s.Player.Level = 3
		s.Staff = staff.NewRoster(member("a", staff.RoleEngineer, 100))
		course, ok := s.Catalog.FindCourse("basic_audio_engineering")
		require.True(t, ok)

		res := dispatch(t, s, game.SendStaffToTraining{StaffID: "a", CourseID: course.ID})
		assert.Equal(t, 1000-course.Cost, res.State.Money)
		m, _ := res.State.Staff.Find("a")
		assert.Equal(t, staff.StatusTraining, m.Status)

		st := res.State
		var events []game.Event
		for i := 0; i < course.Duration; i++ {
			step := dispatch(t, st, game.AdvanceDay{})
			st, events = step.State, step.Events
		}

		m, _ = st.Staff.Find("a")
		assert.Equal(t, staff.StatusIdle, m.Status)
		assert.Equal(t, 60+course.Boost.Technical, m.Stats.Technical)
		assert.Contains(t, kinds(events), notification.KindTrainingComplete)
	})
}

func TestAdvanceDay(t *testing.T) {
	t.Run("energy follows status", func(t *testing.T) {
		s := newState(1000)
		resting := member("r", staff.RoleProducer, 0)
		resting.Status = staff.StatusResting
		s.Staff = staff.NewRoster(member("i", staff.RoleEngineer, 0), resting)

		st := dispatch(t, s, game.AdvanceDay{}).State

		idle, _ := st.Staff.Find("i")
		rested, _ := st.Staff.Find("r")
		assert.Equal(t, 90, idle.Energy)
		assert.Equal(t, 100, rested.Energy)
		assert.Equal(t, 2, st.Day)
	})

	t.Run("pays salaries on the interval", func(t *testing.T) {
		s := newState(1000)
		s.Day = 6
		s.Staff = staff.NewRoster(member("a", staff.RoleEngineer, 120))

		res := dispatch(t, s, game.AdvanceDay{})

		assert.Equal(t, 880, res.State.Money)
		assert.Contains(t, kinds(res.Events), notification.KindSalariesPaid)
		require.Len(t, res.Movements, 1)
		assert.Equal(t, game.MovementSalaries, res.Movements[0].Kind)
	})

	t.Run("skips unaffordable salaries", func(t *testing.T) {
		s := newState(50)
		s.Day = 6
		s.Staff = staff.NewRoster(member("a", staff.RoleEngineer, 120))

		res := dispatch(t, s, game.AdvanceDay{})

		assert.Equal(t, 50, res.State.Money)
		assert.Contains(t, kinds(res.Events), notification.KindInsufficientFunds)
		assert.Empty(t, res.Movements)
	})
}

func TestPerformWork(t *testing.T) {
	t.Run("requires an active project", func(t *testing.T) {
		_, err := game.Reduce(newState(1000), game.PerformWork{})

		var noProject *shared.NoActiveProjectError
		assert.True(t, errors.As(err, &noProject))
	})

	t.Run("stops at daily capacity", func(t *testing.T) {
		s := newState(1000)
		s.Staff = staff.NewRoster(member("a", staff.RoleEngineer, 0))
		s = withActiveProject(t, s, job("p1", stage("Recording", 10000, 0, "")))
		s = dispatch(t, s, game.AssignStaff{StaffID: "a"}).State

		for i := 0; i < s.Player.DailyWorkCapacity; i++ {
			s = dispatch(t, s, game.PerformWork{}).State
		}
		_, err := game.Reduce(s, game.PerformWork{})

		var exhausted *shared.WorkCapacityExhaustedError
		require.True(t, errors.As(err, &exhausted))
		current, _ := s.ActiveProject.CurrentStage()
		assert.Positive(t, current.WorkUnitsCompleted)
		m, _ := s.Staff.Find("a")
		assert.Equal(t, 80-10*s.Player.DailyWorkCapacity, m.Energy)

		next := dispatch(t, s, game.AdvanceDay{}).State
		assert.Equal(t, 0, next.Player.WorkSessionsUsed)
	})

	t.Run("finished stage takes no more work", func(t *testing.T) {
		// Arrange
		s := newState(1000)
		s.Staff = staff.NewRoster(member("a", staff.RoleEngineer, 0))
		s = withActiveProject(t, s, job("p1", stage("Recording", 10, 10, ""), stage("Mixing", 50, 0, "")))
		s = dispatch(t, s, game.AssignStaff{StaffID: "a"}).State
		before := *s.ActiveProject

		// Act
		for i := 0; i < 3; i++ {
			s = dispatch(t, s, game.PerformWork{}).State
		}

		// Assert
		assert.Equal(t, before.CreativityPoints, s.ActiveProject.CreativityPoints)
		assert.Equal(t, before.TechnicalPoints, s.ActiveProject.TechnicalPoints)
		assert.Equal(t, 0, s.Player.WorkSessionsUsed)
		m, _ := s.Staff.Find("a")
		assert.Equal(t, 80, m.Energy)
	})
}

func TestMinigame_QualityRewardOncePerStage(t *testing.T) {
	// Arrange
	s := newState(1000)
	s = withActiveProject(t, s, job("p1", stage("Mixing", 100, 0, string(minigame.TypeMixingBoard))))

	// Act
	opened := dispatch(t, s, game.OpenMinigame{})
	done := dispatch(t, opened.State, game.MinigameCompleted{Type: minigame.TypeMixingBoard, Score: 50})
	_, reopen := game.Reduce(done.State, game.OpenMinigame{})

	// Assert
	assert.Equal(t, []notification.Kind{notification.KindMinigameAvailable}, kinds(opened.Events))
	assert.Equal(t, 20, done.State.ActiveProject.CreativityPoints)
	assert.Equal(t, 30, done.State.ActiveProject.TechnicalPoints)
	assert.Error(t, reopen)
}

func TestMinigame_SpeedRewardAddsStageWork(t *testing.T) {
	s := newState(1000)
	s = withActiveProject(t, s, job("p1", stage("Editing", 100, 80, string(minigame.TypeSoundWave))))
	s = dispatch(t, s, game.OpenMinigame{}).State

	res := dispatch(t, s, game.MinigameCompleted{Type: minigame.TypeSoundWave, Score: 30})

	current, _ := res.State.ActiveProject.CurrentStage()
	assert.Equal(t, 100, current.WorkUnitsCompleted)
	assert.True(t, current.Completed())
}

func TestMinigameCompleted_WithoutOffer(t *testing.T) {
	s := newState(1000)
	s = withActiveProject(t, s, job("p1", stage("Mixing", 100, 0, string(minigame.TypeMixingBoard))))

	res, err := game.Reduce(s, game.MinigameCompleted{Type: minigame.TypeMixingBoard, Score: 90})

	assert.Error(t, err)
	assert.Same(t, s, res.State)
}

func TestPurchaseEquipment_MilestoneGated(t *testing.T) {
	// Arrange: the level 10 milestone lists pro_condenser_mic.
	cat := catalog.Default()
	cat.Equipment = append(cat.Equipment, catalog.Equipment{ID: "pro_condenser_mic", Name: "Pro Condenser Mic", Price: 300})
	s := game.NewState(game.Setup{Money: 1000, Catalog: cat, Rules: game.DefaultRules()})

	// Act
	locked, err := game.Reduce(s, game.PurchaseEquipment{EquipmentID: "pro_condenser_mic"})
	s.Player.ClaimedMilestones = []int{5, 10}
	bought := dispatch(t, s, game.PurchaseEquipment{EquipmentID: "pro_condenser_mic"})

	// Assert
	var gate *shared.FeatureLockedError
	require.True(t, errors.As(err, &gate))
	assert.Equal(t, 10, gate.RequiredLevel)
	assert.Equal(t, 1000, locked.State.Money)
	assert.True(t, bought.State.Owns("pro_condenser_mic"))
	assert.Equal(t, 700, bought.State.Money)
}

func TestPurchaseEquipment_OwnedIsNoOp(t *testing.T) {
	s := newState(1000)

	first := dispatch(t, s, game.PurchaseEquipment{EquipmentID: "condenser_mic"})
	second := dispatch(t, first.State, game.PurchaseEquipment{EquipmentID: "condenser_mic"})

	assert.Equal(t, 550, first.State.Money)
	assert.True(t, first.State.Owns("condenser_mic"))
	assert.Equal(t, 550, second.State.Money)
	assert.Empty(t, second.Movements)
}
