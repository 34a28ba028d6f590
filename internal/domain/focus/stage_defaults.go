package focus

import "strings"

type stageTemplate struct {
	keywords  []string
	split     [3]float64
	reasoning string
}

// Ordered: the first template whose keyword appears in the stage name wins.
var stageTemplates = []stageTemplate{
	{[]string{"setup", "recording", "tracking"}, [3]float64{45, 40, 15}, "Recording stages benefit from performance coaching and quality capture"},
	{[]string{"mix"}, [3]float64{25, 35, 40}, "Mixing requires balancing technical precision with spatial arrangement"},
	{[]string{"master"}, [3]float64{20, 50, 30}, "Mastering prioritizes technical excellence and final cohesion"},
	{[]string{"writing", "arrangement"}, [3]float64{50, 20, 30}, "Creative stages benefit from inspiration and arrangement focus"},
	{[]string{"production", "overdub"}, [3]float64{35, 30, 35}, "Production stages need balanced attention across all areas"},
}

var generalTemplate = stageTemplate{split: [3]float64{35, 35, 30}, reasoning: "Balanced approach for general project work"}

type genreModifier struct {
	factors   [3]float64
	reasoning string
}

var genreModifiers = map[string]genreModifier{
	"rock":       {[3]float64{1.2, 1.0, 0.9}, "Rock emphasizes powerful performances"},
	"electronic": {[3]float64{0.8, 0.9, 1.3}, "Electronic music relies heavily on layering and arrangement"},
	"acoustic":   {[3]float64{1.3, 1.1, 0.7}, "Acoustic music prioritizes natural performance and capture"},
	"folk":       {[3]float64{1.3, 1.1, 0.7}, "Acoustic music prioritizes natural performance and capture"},
}

var neutralModifier = genreModifier{[3]float64{1, 1, 1}, "Balanced approach works well for this genre"}

// StageDefault is the built-in split for a stage name and project genre, used
// whenever no staff is assigned. The result always sums to 100.
func StageDefault(stageName, genre string) (Allocation, string) {
	tpl := templateFor(stageName)
	mod, ok := genreModifiers[strings.ToLower(genre)]
	if !ok {
		mod = neutralModifier
	}

	var raw [3]float64
	for i := range raw {
		raw[i] = tpl.split[i] * mod.factors[i]
	}
	alloc, _ := normalize(raw)
	return alloc, tpl.reasoning + ". " + mod.reasoning
}

// DefaultWeights returns the stage focus areas implied by its name.
func DefaultWeights(stageName string) Weights {
	tpl := templateFor(stageName)
	return Weights{
		Performance:  tpl.split[0] / 100,
		SoundCapture: tpl.split[1] / 100,
		Layering:     tpl.split[2] / 100,
	}
}

func templateFor(stageName string) stageTemplate {
	name := strings.ToLower(stageName)
	for _, tpl := range stageTemplates {
		for _, kw := range tpl.keywords {
			if strings.Contains(name, kw) {
				return tpl
			}
		}
	}
	return generalTemplate
}
