package scoring

import "github.com/andrescamacho/studiosim-go/pkg/utils"

const (
	// MaxFocusDeviation is the largest possible Σ|current−optimal| between two
	// three-axis splits that both sum to 100.
	MaxFocusDeviation = 200

	optimizedThreshold = 0.8
	efficientThreshold = 0.6
)

// FocusEffectiveness converts a total absolute deviation into a score in [0,1].
func FocusEffectiveness(totalDeviation int) float64 {
	return utils.ClampFloat(1-float64(totalDeviation)/MaxFocusDeviation, 0, 1)
}

// IsOptimized reports effectiveness above the "optimized" hint threshold.
func IsOptimized(effectiveness float64) bool {
	return effectiveness > optimizedThreshold
}

// IsEfficient reports effectiveness above the "efficient" hint threshold.
func IsEfficient(effectiveness float64) bool {
	return effectiveness > efficientThreshold
}

// WorkMultiplier scales nominal effort by focus alignment: 0.5 at the worst
// split, 1.5 at a perfect one.
func WorkMultiplier(effectiveness float64) float64 {
	return 0.5 + utils.ClampFloat(effectiveness, 0, 1)
}
