package generator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/studiosim-go/internal/adapters/generator"
	"github.com/andrescamacho/studiosim-go/internal/domain/minigame"
	"github.com/andrescamacho/studiosim-go/internal/domain/project"
	"github.com/andrescamacho/studiosim-go/internal/domain/staff"
)

func TestGenerator_SameSeedSameContent(t *testing.T) {
	// Arrange
	a := generator.New(42)
	b := generator.New(42)

	// Act
	projectsA, errA := a.Projects(3)
	projectsB, errB := b.Projects(3)

	// Assert
	require.NoError(t, errA)
	require.NoError(t, errB)
	assert.Equal(t, projectsA, projectsB)
	assert.Equal(t, a.Candidates(4), b.Candidates(4))
}

func TestGenerator_ProjectsAreValidJobs(t *testing.T) {
	g := generator.New(7)

	projects, err := g.Projects(20)

	require.NoError(t, err)
	require.Len(t, projects, 20)
	ids := map[string]bool{}
	for _, p := range projects {
		require.NoError(t, p.Validate())
		assert.Equal(t, project.StatusPending, p.Status)
		assert.GreaterOrEqual(t, p.Difficulty, 1)
		assert.LessOrEqual(t, p.Difficulty, 10)
		assert.Positive(t, p.PayoutBase)
		assert.False(t, ids[p.ID], "duplicate id %s", p.ID)
		ids[p.ID] = true
		for _, s := range p.Stages {
			assert.GreaterOrEqual(t, s.WorkUnitsRequired, 4)
			assert.Equal(t, project.StagePending, s.Status)
		}
	}
}

func TestGenerator_CandidatesAreHireable(t *testing.T) {
	g := generator.New(11)

	candidates := g.Candidates(10)

	require.Len(t, candidates, 10)
	for _, c := range candidates {
		assert.True(t, strings.HasPrefix(c.ID, "staff-"), c.ID)
		assert.True(t, c.Role.IsValid())
		assert.Equal(t, staff.StatusIdle, c.Status)
		assert.Equal(t, staff.MaxEnergy, c.Energy)
		assert.GreaterOrEqual(t, c.Salary, 80)
		assert.Less(t, c.Salary, 200)
		assert.GreaterOrEqual(t, c.Stats.Creativity, 15)
		assert.Less(t, c.Stats.Creativity, 40)
	}
}

func TestTriggerFor(t *testing.T) {
	assert.Equal(t, minigame.TypeMixingBoard, generator.TriggerFor("Final Mix"))
	assert.Equal(t, minigame.TypeMastering, generator.TriggerFor("Mastering"))
	assert.Equal(t, minigame.TypeBeatMaking, generator.TriggerFor("Beat Production & Sampling"))
	assert.Equal(t, minigame.TypeMicrophonePlacement, generator.TriggerFor("Live Recording Night"))
	assert.Equal(t, minigame.Type(""), generator.TriggerFor("Client Consultation & Concept"))
}
