package script_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/studiosim-go/internal/adapters/script"
	"github.com/andrescamacho/studiosim-go/internal/domain/minigame"
)

const weekOne = `
name: first week
seed: 7
minigames:
  default: 70
  scores:
    mixing_board: [90, 40]
steps:
  - do: hire
    target: best
  - do: start
  - do: assign
    target: all
  - do: focus
    focus: {performance: 40, soundCapture: 35, layering: 25}
  - do: work
    times: 3
  - do: finish
`

func TestParse_ReadsSteps(t *testing.T) {
	// Act
	s, err := script.Parse([]byte(weekOne))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "first week", s.Name)
	assert.Equal(t, int64(7), s.Seed)
	require.Len(t, s.Steps, 6)
	assert.Equal(t, script.VerbHire, s.Steps[0].Do)
	assert.Equal(t, script.TargetBest, s.Steps[0].Target)
	assert.Equal(t, 3, s.Steps[4].Repeat())
	assert.Equal(t, 1, s.Steps[1].Repeat())
	assert.Equal(t, []int{90, 40}, s.Minigames.Scores[minigame.TypeMixingBoard])
	assert.Equal(t, "focus 40/35/25", s.Steps[3].String())
}

func TestParse_RejectsBadScripts(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"empty", "", "empty"},
		{"unknown verb", "steps:\n  - do: dance\n", "unknown verb"},
		{"train without course", "steps:\n  - do: train\n", "course is required"},
		{"focus without split", "steps:\n  - do: focus\n", "focus is required"},
		{"negative score", "minigames:\n  scores:\n    mastering: [-1]\n", "negative score"},
		{"unknown field", "stepz: []\n", "field stepz not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := script.Parse([]byte(tt.body))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadAndMarshal_RoundTripThroughFile(t *testing.T) {
	// Arrange
	original, err := script.Parse([]byte(weekOne))
	require.NoError(t, err)
	data, err := script.Marshal(original)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "week.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	// Act
	loaded, err := script.Load(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestScoreRunner_ReplaysQueuedScoresThenDefault(t *testing.T) {
	runner := script.NewScoreRunner(script.MinigameScores{
		Default: 55,
		Scores:  map[minigame.Type][]int{minigame.TypeMastering: {80, 30}},
	})
	ctx := context.Background()

	first, _ := runner.Run(ctx, minigame.TypeMastering, 4)
	second, _ := runner.Run(ctx, minigame.TypeMastering, 4)
	third, _ := runner.Run(ctx, minigame.TypeMastering, 4)
	other, _ := runner.Run(ctx, minigame.TypeSoundWave, 2)

	assert.Equal(t, []int{80, 30, 55, 55}, []int{first, second, third, other})
	assert.Len(t, runner.Played(), 4)
}

func TestScoreRunner_DefaultsTo60(t *testing.T) {
	runner := script.NewScoreRunner(script.MinigameScores{})

	score, err := runner.Run(context.Background(), minigame.TypeBeatMaking, 2)

	require.NoError(t, err)
	assert.Equal(t, 60, score)
}

func TestScoreRunner_HonoursCancellation(t *testing.T) {
	runner := script.NewScoreRunner(script.MinigameScores{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Run(ctx, minigame.TypeBeatMaking, 2)

	assert.ErrorIs(t, err, context.Canceled)
}
