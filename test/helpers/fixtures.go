package helpers

import (
	"fmt"

	"github.com/andrescamacho/studiosim-go/internal/domain/catalog"
	"github.com/andrescamacho/studiosim-go/internal/domain/game"
	"github.com/andrescamacho/studiosim-go/internal/domain/project"
	"github.com/andrescamacho/studiosim-go/internal/domain/staff"
)

// NewState returns a day 1 studio with the default catalog
func NewState(money int) *game.State {
	return game.NewState(game.Setup{
		Money:   money,
		Catalog: catalog.Default(),
		Rules:   game.DefaultRules(),
	})
}

// StaffMember builds an idle staff member with even stats
func StaffMember(id string, role staff.Role, salary int) staff.Member {
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

// StageSpec is a compact stage description for fixtures
type StageSpec struct {
	Name      string
	Required  int
	Completed int
	Trigger   string
}

// Project builds a pending project from stage specs
func Project(id, genre string, stages ...StageSpec) project.Project {
	p := project.Project{
		ID:          id,
		Name:        fmt.Sprintf("Project %s", id),
		Genre:       genre,
		ClientType:  "indie",
		Difficulty:  2,
		PayoutBase:  1000,
		RepGainBase: 10,
		Status:      project.StatusPending,
	}
	for _, s := range stages {
		st := project.Stage{
			Name:               s.Name,
			WorkUnitsRequired:  s.Required,
			WorkUnitsCompleted: s.Completed,
			MinigameTriggerID:  s.Trigger,
			Status:             project.StagePending,
		}
		switch {
		case s.Completed >= s.Required:
			st.WorkUnitsCompleted = s.Required
			st.Status = project.StageCompleted
		case s.Completed > 0:
			st.Status = project.StageInProgress
		}
		p.Stages = append(p.Stages, st)
	}
	return p
}
