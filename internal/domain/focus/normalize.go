package focus

import (
	"math"
	"sort"
)

// normalize scales three non-negative raw values to integers summing to 100
// using largest-remainder rounding. Ties go to the earlier axis. ok is false
// when every value is zero.
func normalize(raw [3]float64) (Allocation, bool) {
	total := 0.0
	for i, v := range raw {
		if v < 0 || math.IsNaN(v) {
			raw[i] = 0
		}
		total += raw[i]
	}
	if total <= 0 {
		return Allocation{}, false
	}

	var parts [3]int
	type remainder struct {
		idx  int
		frac float64
	}
	rems := make([]remainder, 0, 3)
	assigned := 0
	for i, v := range raw {
		exact := v / total * 100
		parts[i] = int(math.Floor(exact))
		assigned += parts[i]
		rems = append(rems, remainder{idx: i, frac: exact - float64(parts[i])})
	}

	sort.SliceStable(rems, func(i, j int) bool {
		return rems[i].frac > rems[j].frac
	})
	for i := 0; assigned < 100; i++ {
		parts[rems[i%3].idx]++
		assigned++
	}

	return Allocation{Performance: parts[0], SoundCapture: parts[1], Layering: parts[2]}, true
}
