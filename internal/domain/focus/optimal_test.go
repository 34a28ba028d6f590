package focus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/studiosim-go/internal/domain/focus"
)

func TestComputeOptimal_NoStaffFallsBackToStageDefault(t *testing.T) {
	stage := focus.StageProfile{Name: "Mastering", Genre: "pop"}

	got := focus.ComputeOptimal(nil, stage)

	want, _ := focus.StageDefault("Mastering", "pop")
	assert.Equal(t, want, got.Allocation)
	assert.False(t, got.FromStaff)
	assert.Contains(t, got.Reasoning, "No staff assigned")
}

func TestComputeOptimal_WeightsStaffStatsByFocusAreas(t *testing.T) {
	staff := []focus.StaffProfile{
		{Name: "A", Creativity: 60, Technical: 20, Speed: 20},
		{Name: "B", Creativity: 40, Technical: 80, Speed: 30},
	}
	stage := focus.StageProfile{
		Name:       "Recording",
		FocusAreas: focus.Weights{Performance: 1, SoundCapture: 1, Layering: 2},
	}

	got := focus.ComputeOptimal(staff, stage)

	// raw 100, 100, 100 -> 34/33/33
	assert.True(t, got.FromStaff)
	assert.Equal(t, focus.Allocation{Performance: 34, SoundCapture: 33, Layering: 33}, got.Allocation)
	assert.Contains(t, got.Reasoning, "2 assigned staff")
}

func TestComputeOptimal_ZeroStatsFallsBack(t *testing.T) {
	staff := []focus.StaffProfile{{Name: "Intern"}}

	got := focus.ComputeOptimal(staff, focus.StageProfile{Name: "Mixing"})

	assert.False(t, got.FromStaff)
	assert.Equal(t, 100, got.Allocation.Sum())
	assert.NotEmpty(t, got.Reasoning)
}

func TestComputeOptimal_AlwaysSumsTo100(t *testing.T) {
	for c := 0; c <= 100; c += 7 {
		for tech := 0; tech <= 100; tech += 11 {
			for s := 1; s <= 100; s += 13 {
				staff := []focus.StaffProfile{{Creativity: c, Technical: tech, Speed: s}}
				got := focus.ComputeOptimal(staff, focus.StageProfile{Name: "Production"})
				require.Equal(t, 100, got.Allocation.Sum())
			}
		}
	}
}

func TestEvaluate(t *testing.T) {
	optimal := focus.MustNewAllocation(50, 30, 20)

	perfect := focus.Evaluate(optimal, optimal)
	assert.InDelta(t, 1.0, perfect.Score, 1e-9)
	assert.True(t, perfect.Optimized)
	assert.InDelta(t, 1.5, perfect.Multiplier, 1e-9)

	// deviation 20+10+10 = 40 -> 0.8, efficient but not optimized
	near := focus.Evaluate(focus.MustNewAllocation(30, 40, 30), optimal)
	assert.InDelta(t, 0.8, near.Score, 1e-9)
	assert.False(t, near.Optimized)
	assert.True(t, near.Efficient)

	// deviation 100 -> 0.5
	far := focus.Evaluate(focus.MustNewAllocation(0, 30, 70), optimal)
	assert.InDelta(t, 0.5, far.Score, 1e-9)
	assert.False(t, far.Efficient)
	assert.Less(t, far.Multiplier, near.Multiplier)
}

func TestSuggest_OnlyLargeDeviationsSortedDescending(t *testing.T) {
	current := focus.MustNewAllocation(10, 70, 20)
	optimal := focus.MustNewAllocation(50, 20, 30)

	got := focus.Suggest(current, optimal)

	require.Len(t, got, 2)
	assert.Equal(t, focus.AxisSoundCapture, got[0].Axis)
	assert.Equal(t, 50, got[0].Deviation)
	assert.Contains(t, got[0].Message, "Reduce Sound Capture")
	assert.Equal(t, focus.AxisPerformance, got[1].Axis)
	assert.Contains(t, got[1].Message, "Increase Performance")
}

func TestSuggest_NoneWhenClose(t *testing.T) {
	got := focus.Suggest(focus.MustNewAllocation(40, 30, 30), focus.MustNewAllocation(50, 25, 25))

	assert.Empty(t, got)
}
