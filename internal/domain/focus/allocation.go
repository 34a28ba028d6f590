package focus

import (
	"fmt"

	"github.com/andrescamacho/studiosim-go/internal/domain/shared"
)

// Axis names one of the three effort dimensions.
type Axis string

const (
	AxisPerformance  Axis = "performance"
	AxisSoundCapture Axis = "soundCapture"
	AxisLayering     Axis = "layering"
)

// Axes lists every axis in display order.
func Axes() []Axis {
	return []Axis{AxisPerformance, AxisSoundCapture, AxisLayering}
}

// Label returns the human-readable name of the axis
func (a Axis) Label() string {
	switch a {
	case AxisPerformance:
		return "Performance"
	case AxisSoundCapture:
		return "Sound Capture"
	case AxisLayering:
		return "Layering"
	default:
		return string(a)
	}
}

// Allocation is a player-chosen split of effort. Values are always
// non-negative and sum to 100; construct through NewAllocation.
type Allocation struct {
	Performance  int `json:"performance" yaml:"performance"`
	SoundCapture int `json:"soundCapture" yaml:"soundCapture"`
	Layering     int `json:"layering" yaml:"layering"`
}

// NewAllocation validates and builds an Allocation
func NewAllocation(performance, soundCapture, layering int) (Allocation, error) {
	a := Allocation{Performance: performance, SoundCapture: soundCapture, Layering: layering}
	if err := a.Validate(); err != nil {
		return Allocation{}, err
	}
	return a, nil
}

// MustNewAllocation panics on an invalid split. For literals only.
func MustNewAllocation(performance, soundCapture, layering int) Allocation {
	a, err := NewAllocation(performance, soundCapture, layering)
	if err != nil {
		panic(err)
	}
	return a
}

// Balanced is the split a new studio starts with.
func Balanced() Allocation {
	return Allocation{Performance: 34, SoundCapture: 33, Layering: 33}
}

// Validate checks the sum-to-100 invariant
func (a Allocation) Validate() error {
	if a.Performance < 0 || a.SoundCapture < 0 || a.Layering < 0 {
		return shared.NewInvalidFocusAllocationError(a.Sum())
	}
	if a.Sum() != 100 {
		return shared.NewInvalidFocusAllocationError(a.Sum())
	}
	return nil
}

// Sum of the three parts
func (a Allocation) Sum() int {
	return a.Performance + a.SoundCapture + a.Layering
}

// Get returns the value on one axis
func (a Allocation) Get(axis Axis) int {
	switch axis {
	case AxisPerformance:
		return a.Performance
	case AxisSoundCapture:
		return a.SoundCapture
	case AxisLayering:
		return a.Layering
	default:
		return 0
	}
}

func (a Allocation) String() string {
	return fmt.Sprintf("%d/%d/%d", a.Performance, a.SoundCapture, a.Layering)
}

// Weights is a non-normalised importance vector over the three axes, used for
// stage focus areas and genre modifiers.
type Weights struct {
	Performance  float64 `yaml:"performance"`
	SoundCapture float64 `yaml:"soundCapture"`
	Layering     float64 `yaml:"layering"`
}

// IsZero reports whether no axis carries weight
func (w Weights) IsZero() bool {
	return w.Performance <= 0 && w.SoundCapture <= 0 && w.Layering <= 0
}

// WeightsOf turns an allocation into fractional weights.
func WeightsOf(a Allocation) Weights {
	return Weights{
		Performance:  float64(a.Performance) / 100,
		SoundCapture: float64(a.SoundCapture) / 100,
		Layering:     float64(a.Layering) / 100,
	}
}
