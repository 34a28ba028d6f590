package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/studiosim-go/internal/domain/catalog"
	"github.com/andrescamacho/studiosim-go/internal/domain/game"
	"github.com/andrescamacho/studiosim-go/internal/domain/notification"
	"github.com/andrescamacho/studiosim-go/internal/domain/project"
	"github.com/andrescamacho/studiosim-go/internal/domain/staff"
	"github.com/andrescamacho/studiosim-go/test/helpers"
)

type studioContext struct {
	state  *game.State
	result game.Result
	err    error
}

func (sc *studioContext) reset() {
	sc.state = nil
	sc.result = game.Result{}
	sc.err = nil
}

// apply reduces an action and keeps the new snapshot when it is accepted
func (sc *studioContext) apply(action game.Action) error {
	if sc.state == nil {
		return fmt.Errorf("no studio set up")
	}
	res, err := game.Reduce(sc.state, action)
	sc.err = err
	sc.result = res
	if err == nil {
		sc.state = res.State
	}
	return nil
}

// Given steps

func (sc *studioContext) aStudioWith(money int) error {
	sc.state = game.NewState(game.Setup{Money: money, Catalog: catalog.Default(), Rules: game.DefaultRules()})
	return nil
}

func (sc *studioContext) theCandidates(table *godog.Table) error {
	members, err := membersFromTable(table)
	if err != nil {
		return err
	}
	sc.state.Candidates = staff.NewRoster(members...)
	return nil
}

func (sc *studioContext) aProjectInGenreWithStages(id, genre string, table *godog.Table) error {
	p, err := projectFromTable(id, genre, table)
	if err != nil {
		return err
	}
	return sc.apply(game.OfferProjects{Projects: []project.Project{p}})
}

// When steps

func (sc *studioContext) iHire(id string) error {
	return sc.apply(game.HireStaff{CandidateID: id})
}

func (sc *studioContext) iStartProject(id string) error {
	return sc.apply(game.StartProject{ProjectID: id})
}

func (sc *studioContext) iAssign(id string) error {
	return sc.apply(game.AssignStaff{StaffID: id})
}

func (sc *studioContext) iSetFocusTo(performance, soundCapture, layering int) error {
	return sc.apply(game.SetFocus{Performance: performance, SoundCapture: soundCapture, Layering: layering})
}

func (sc *studioContext) iPerformWork() error {
	return sc.apply(game.PerformWork{})
}

func (sc *studioContext) iAdvanceDays(days int) error {
	for i := 0; i < days; i++ {
		if err := sc.apply(game.AdvanceDay{}); err != nil {
			return err
		}
		if sc.err != nil {
			return fmt.Errorf("advance day rejected: %w", sc.err)
		}
	}
	return nil
}

// Then steps

func (sc *studioContext) theActionShouldSucceed() error {
	if sc.err != nil {
		return fmt.Errorf("expected action to succeed, got: %v", sc.err)
	}
	return nil
}

func (sc *studioContext) theActionShouldBeRejectedWith(kind string) error {
	if sc.err == nil {
		return fmt.Errorf("expected action to be rejected with %s, but it succeeded", kind)
	}
	got := notification.FromError(sc.err, sc.state.Day).Kind
	if string(got) != kind {
		return fmt.Errorf("expected rejection %s, got %s (%v)", kind, got, sc.err)
	}
	return nil
}

func (sc *studioContext) theStudioShouldHave(money int) error {
	if sc.state.Money != money {
		return fmt.Errorf("expected $%d, got $%d", money, sc.state.Money)
	}
	return nil
}

func (sc *studioContext) theRosterShouldHaveStaff(n int) error {
	if got := sc.state.Staff.Len(); got != n {
		return fmt.Errorf("expected %d staff, got %d", n, got)
	}
	return nil
}

func (sc *studioContext) shouldBeAssignedToTheActiveProject(id string) error {
	m, ok := sc.state.Staff.Find(id)
	if !ok {
		return fmt.Errorf("staff %s not hired", id)
	}
	if sc.state.ActiveProject == nil || m.AssignedProjectID != sc.state.ActiveProject.ID {
		return fmt.Errorf("staff %s is assigned to %q", id, m.AssignedProjectID)
	}
	return nil
}

func (sc *studioContext) theEventsShouldInclude(kind string) error {
	for _, e := range sc.result.Events {
		if string(e.Kind) == kind {
			return nil
		}
	}
	return fmt.Errorf("no %s event among %d events", kind, len(sc.result.Events))
}

func (sc *studioContext) theCurrentStageShouldHaveProgress() error {
	if sc.state.ActiveProject == nil {
		return fmt.Errorf("no active project")
	}
	stage, ok := sc.state.ActiveProject.CurrentStage()
	if !ok {
		return fmt.Errorf("active project has no current stage")
	}
	if stage.WorkUnitsCompleted <= 0 {
		return fmt.Errorf("expected progress on %s, got none", stage.Name)
	}
	return nil
}

func (sc *studioContext) theFocusShouldBe(performance, soundCapture, layering int) error {
	f := sc.state.Focus
	if f.Performance != performance || f.SoundCapture != soundCapture || f.Layering != layering {
		return fmt.Errorf("expected focus %d/%d/%d, got %s", performance, soundCapture, layering, f)
	}
	return nil
}

func (sc *studioContext) theDayShouldBe(day int) error {
	if sc.state.Day != day {
		return fmt.Errorf("expected day %d, got %d", day, sc.state.Day)
	}
	return nil
}

// membersFromTable reads | id | role | salary | rows into idle staff
func membersFromTable(table *godog.Table) ([]staff.Member, error) {
	var members []staff.Member
	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header
		}
		role, err := staff.ParseRole(getCellValue(table, row, "role"))
		if err != nil {
			return nil, err
		}
		salary, err := getCellInt(table, row, "salary")
		if err != nil {
			return nil, err
		}
		members = append(members, helpers.StaffMember(getCellValue(table, row, "id"), role, salary))
	}
	return members, nil
}

// projectFromTable reads | name | required | trigger | rows into a project
func projectFromTable(id, genre string, table *godog.Table) (project.Project, error) {
	var stages []helpers.StageSpec
	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header
		}
		required, err := getCellInt(table, row, "required")
		if err != nil {
			return project.Project{}, err
		}
		stages = append(stages, helpers.StageSpec{
			Name:     getCellValue(table, row, "name"),
			Required: required,
			Trigger:  getCellValue(table, row, "trigger"),
		})
	}
	return helpers.Project(id, genre, stages...), nil
}

// InitializeStudioScenario registers the reducer-level step definitions
func InitializeStudioScenario(ctx *godog.ScenarioContext) {
	sc := &studioContext{}

	ctx.Before(func(c context.Context, _ *godog.Scenario) (context.Context, error) {
		sc.reset()
		return c, nil
	})

	// Given steps
	ctx.Step(`^a studio with \$(\d+)$`, sc.aStudioWith)
	ctx.Step(`^the candidates:$`, sc.theCandidates)
	ctx.Step(`^a project "([^"]*)" in genre "([^"]*)" with stages:$`, sc.aProjectInGenreWithStages)

	// When steps
	ctx.Step(`^I hire "([^"]*)"$`, sc.iHire)
	ctx.Step(`^I start project "([^"]*)"$`, sc.iStartProject)
	ctx.Step(`^I assign "([^"]*)"$`, sc.iAssign)
	ctx.Step(`^I set focus to (-?\d+)/(-?\d+)/(-?\d+)$`, sc.iSetFocusTo)
	ctx.Step(`^I perform work$`, sc.iPerformWork)
	ctx.Step(`^I advance (\d+) days?$`, sc.iAdvanceDays)

	// Then steps
	ctx.Step(`^the action should succeed$`, sc.theActionShouldSucceed)
	ctx.Step(`^the action should be rejected with "([^"]*)"$`, sc.theActionShouldBeRejectedWith)
	ctx.Step(`^the studio should have \$(\d+)$`, sc.theStudioShouldHave)
	ctx.Step(`^the roster should have (\d+) staff$`, sc.theRosterShouldHaveStaff)
	ctx.Step(`^"([^"]*)" should be assigned to the active project$`, sc.shouldBeAssignedToTheActiveProject)
	ctx.Step(`^the events should include "([^"]*)"$`, sc.theEventsShouldInclude)
	ctx.Step(`^the current stage should have progress$`, sc.theCurrentStageShouldHaveProgress)
	ctx.Step(`^the focus should be (\d+)/(\d+)/(\d+)$`, sc.theFocusShouldBe)
	ctx.Step(`^the day should be (\d+)$`, sc.theDayShouldBe)
}
