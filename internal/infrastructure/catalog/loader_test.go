package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/studiosim-go/internal/domain/minigame"
	"github.com/andrescamacho/studiosim-go/internal/infrastructure/catalog"
)

const sampleCatalog = `
equipment:
  - id: tape_machine
    name: Tape Machine
    category: outboard
    price: 2000
    bonuses:
      quality: 20
      genre:
        rock: 3
courses:
  - id: drum_tuning
    name: Drum Tuning
    cost: 300
    duration: 2
    boost:
      technical: 5
milestones:
  - level: 3
    id: level_3
    name: First Steps
    attributePoints: 1
minigames:
  - type: mixing_board
    name: Mixing Board
    difficulty: 2
    reward: speed
genreRequirements:
  Jazz:
    technical: 65
    creative: 75
`

func TestParse_OverridesListedSections(t *testing.T) {
	// Act
	cat, err := catalog.Parse([]byte(sampleCatalog))

	// Assert
	require.NoError(t, err)
	require.Len(t, cat.Equipment, 1)
	assert.Equal(t, 2000, cat.Equipment[0].Price)
	assert.Equal(t, 3, cat.Equipment[0].Bonuses.Genre["rock"])

	course, ok := cat.FindCourse("drum_tuning")
	require.True(t, ok)
	assert.Equal(t, 5, course.Boost.Technical)

	assert.True(t, cat.Milestones.IsMilestoneLevel(3))
	assert.False(t, cat.Milestones.IsMilestoneLevel(5))

	def, ok := cat.Minigames.Lookup("mixing_board")
	require.True(t, ok)
	assert.Equal(t, minigame.RewardSpeed, def.Reward)

	assert.Equal(t, 75, cat.GenreRequirements.For("jazz").Creative)
}

func TestParse_EmptyKeepsDefaults(t *testing.T) {
	cat, err := catalog.Parse(nil)

	require.NoError(t, err)
	assert.NotEmpty(t, cat.Equipment)
	assert.True(t, cat.Milestones.IsMilestoneLevel(5))
}

func TestParse_RejectsDuplicateIDs(t *testing.T) {
	_, err := catalog.Parse([]byte("equipment:\n  - id: a\n  - id: a\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate equipment id")
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := catalog.Parse([]byte("instruments: []\n"))

	require.Error(t, err)
}

func TestParse_RejectsInvalidMinigameReward(t *testing.T) {
	_, err := catalog.Parse([]byte("minigames:\n  - type: mastering\n    reward: fame\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid reward type")
}

func TestLoad_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleCatalog), 0o644))

	cat, err := catalog.Load(path)

	require.NoError(t, err)
	_, ok := cat.FindEquipment("tape_machine")
	assert.True(t, ok)
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cat, err := catalog.Load("")

	require.NoError(t, err)
	_, ok := cat.FindEquipment("condenser_mic")
	assert.True(t, ok)
}
