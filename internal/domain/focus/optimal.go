package focus

import (
	"fmt"
	"sort"

	"github.com/andrescamacho/studiosim-go/internal/domain/scoring"
)

// StaffProfile is the part of an assigned staff member that shapes the
// optimal split. Creativity drives performance, technical drives sound
// capture and speed drives layering.
type StaffProfile struct {
	Name       string
	Creativity int
	Technical  int
	Speed      int
}

// StageProfile describes the stage being worked on.
type StageProfile struct {
	Name       string
	Genre      string
	FocusAreas Weights
}

// Optimal is the recommended split plus a human-readable explanation.
type Optimal struct {
	Allocation Allocation
	Reasoning  string
	FromStaff  bool
}

// ComputeOptimal derives the ideal split for the stage from the aggregate
// stat profile of the assigned staff, weighted by the stage focus areas.
// Without staff, or when the team has no usable stats, the stage default is
// returned instead.
func ComputeOptimal(staff []StaffProfile, stage StageProfile) Optimal {
	fallback, fallbackReason := StageDefault(stage.Name, stage.Genre)
	if len(staff) == 0 {
		return Optimal{
			Allocation: fallback,
			Reasoning:  fmt.Sprintf("No staff assigned to %s. %s", stageLabel(stage.Name), fallbackReason),
		}
	}

	weights := stage.FocusAreas
	if weights.IsZero() {
		weights = DefaultWeights(stage.Name)
	}

	var creativity, technical, speed int
	for _, s := range staff {
		creativity += nonNegative(s.Creativity)
		technical += nonNegative(s.Technical)
		speed += nonNegative(s.Speed)
	}

	raw := [3]float64{
		float64(creativity) * weights.Performance,
		float64(technical) * weights.SoundCapture,
		float64(speed) * weights.Layering,
	}
	alloc, ok := normalize(raw)
	if !ok {
		return Optimal{
			Allocation: fallback,
			Reasoning:  fmt.Sprintf("Assigned staff bring no usable stats to %s. %s", stageLabel(stage.Name), fallbackReason),
		}
	}

	lead := leadingAxis(alloc)
	return Optimal{
		Allocation: alloc,
		FromStaff:  true,
		Reasoning: fmt.Sprintf(
			"%d assigned staff (creativity %d, technical %d, speed %d) weighted by %s focus areas; lean into %s",
			len(staff), creativity, technical, speed, stageLabel(stage.Name), lead.Label(),
		),
	}
}

// Effectiveness is the score of a chosen split against the optimal one.
type Effectiveness struct {
	Score      float64
	Optimized  bool
	Efficient  bool
	Multiplier float64
}

// Evaluate scores current against optimal.
func Evaluate(current, optimal Allocation) Effectiveness {
	score := scoring.FocusEffectiveness(Deviation(current, optimal))
	return Effectiveness{
		Score:      score,
		Optimized:  scoring.IsOptimized(score),
		Efficient:  scoring.IsEfficient(score),
		Multiplier: scoring.WorkMultiplier(score),
	}
}

// Deviation is Σ|current−optimal| over the three axes.
func Deviation(current, optimal Allocation) int {
	total := 0
	for _, axis := range Axes() {
		total += abs(current.Get(axis) - optimal.Get(axis))
	}
	return total
}

const suggestionThreshold = 25

// Suggestion is an actionable hint for one axis.
type Suggestion struct {
	Axis      Axis
	Current   int
	Optimal   int
	Deviation int
	Message   string
}

// Suggest returns one suggestion per axis deviating by more than 25 points,
// largest deviation first.
func Suggest(current, optimal Allocation) []Suggestion {
	var out []Suggestion
	for _, axis := range Axes() {
		c, o := current.Get(axis), optimal.Get(axis)
		dev := abs(c - o)
		if dev <= suggestionThreshold {
			continue
		}
		msg := fmt.Sprintf("Increase %s focus by %d points", axis.Label(), dev)
		if c > o {
			msg = fmt.Sprintf("Reduce %s focus by %d points", axis.Label(), dev)
		}
		out = append(out, Suggestion{Axis: axis, Current: c, Optimal: o, Deviation: dev, Message: msg})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Deviation > out[j].Deviation
	})
	return out
}

func leadingAxis(a Allocation) Axis {
	lead := AxisPerformance
	for _, axis := range Axes() {
		if a.Get(axis) > a.Get(lead) {
			lead = axis
		}
	}
	return lead
}

func stageLabel(name string) string {
	if name == "" {
		return "this stage"
	}
	return name
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
