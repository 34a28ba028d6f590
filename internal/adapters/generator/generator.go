// Package generator produces the job offers and hiring candidates a session
// starts with. A fixed seed always yields the same content.
package generator

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"github.com/andrescamacho/studiosim-go/internal/domain/focus"
	"github.com/andrescamacho/studiosim-go/internal/domain/minigame"
	"github.com/andrescamacho/studiosim-go/internal/domain/project"
	"github.com/andrescamacho/studiosim-go/internal/domain/staff"
	"github.com/andrescamacho/studiosim-go/pkg/utils"
)

const (
	minStageWork  = 4
	maxDifficulty = 10

	candidateStatMin    = 15
	candidateStatSpread = 25
	candidateSalaryMin  = 80
	candidateSalarySpan = 120
)

var genres = []string{"rock", "pop", "electronic", "hip-hop", "acoustic"}

var candidateNames = []string{
	"Alex Rivera", "Sam Chen", "Jordan Blake", "Casey Smith", "Taylor Johnson",
	"Morgan Davis", "Riley Parker", "Avery Wilson", "Quinn Martinez", "Sage Thompson",
}

type stageTemplate struct {
	name string
	work int
}

type projectTemplate struct {
	title      string
	genre      string
	clientType string
	difficulty int
	stages     []stageTemplate
	payout     int
	rep        int
}

var projectTemplates = []projectTemplate{
	{"Summer Vibes", "pop", "Record Label", 3, []stageTemplate{{"Pre-production", 8}, {"Recording", 12}, {"Mixing", 10}, {"Mastering", 6}}, 500, 5},
	{"Midnight Drive", "electronic", "Independent", 4, []stageTemplate{{"Sound Design", 10}, {"Sequencing", 14}, {"Arrangement", 12}, {"Final Mix", 8}}, 400, 4},
	{"Neon Dreams", "electronic", "Streaming", 5, []stageTemplate{{"Concept & Sound Design", 12}, {"Recording & Layering", 16}, {"Mixing & Mastering", 14}}, 700, 7},
	{"Acoustic Confessions", "acoustic", "Independent", 2, []stageTemplate{{"Pre-production & Arrangement", 6}, {"Live Recording Sessions", 10}, {"Subtle Production & Final Mix", 8}}, 350, 3},
	{"Corporate Harmony", "pop", "Commercial", 4, []stageTemplate{{"Client Consultation & Concept", 8}, {"Multiple Variations & Testing", 12}, {"Final Production & Delivery", 10}}, 600, 6},
	{"Underground Cipher", "hip-hop", "Independent", 3, []stageTemplate{{"Beat Production & Sampling", 10}, {"Recording & Vocal Production", 12}, {"Mix & Street Release", 8}}, 400, 4},
	{"Midnight Sessions", "acoustic", "Record Label", 5, []stageTemplate{{"Session Planning & Setup", 8}, {"Live Recording Night", 14}, {"Post-Production & Editing", 12}}, 750, 7},
	{"Rock Anthem", "rock", "Record Label", 4, []stageTemplate{{"Songwriting & Arrangement", 10}, {"Tracking & Recording", 14}, {"Mixing & Production", 12}, {"Mastering & Polish", 8}}, 650, 6},
	{"Urban Freestyle", "hip-hop", "Streaming", 3, []stageTemplate{{"Beat Creation", 8}, {"Vocal Recording", 10}, {"Mixing & Effects", 8}, {"Final Master", 6}}, 450, 4},
}

// Stage names are matched against these keywords in order; the first hit
// decides which minigame the stage can trigger.
var triggerKeywords = []struct {
	keyword string
	trigger minigame.Type
}{
	{"beat", minigame.TypeBeatMaking},
	{"vocal", minigame.TypeVocalRecording},
	{"effects", minigame.TypeEffectChain},
	{"sound design", minigame.TypeSoundWave},
	{"setup", minigame.TypeMicrophonePlacement},
	{"recording", minigame.TypeMicrophonePlacement},
	{"tracking", minigame.TypeRhythmTiming},
	{"mix", minigame.TypeMixingBoard},
	{"master", minigame.TypeMastering},
}

// Generator builds randomized content from a seeded source. It is not safe
// for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// New creates a generator. Seed 0 picks a random seed.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = rand.Int63()
	}
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Candidates returns n hiring candidates with fresh IDs.
func (g *Generator) Candidates(n int) []staff.Member {
	roles := staff.AllRoles()
	out := make([]staff.Member, 0, n)
	for i := 0; i < n; i++ {
		name := candidateNames[g.rng.Intn(len(candidateNames))]
		m := staff.Member{
			ID:          g.id("staff", name),
			Name:        name,
			Role:        roles[g.rng.Intn(len(roles))],
			Status:      staff.StatusIdle,
			Energy:      staff.MaxEnergy,
			LevelInRole: 1,
			Stats: staff.Stats{
				Creativity: candidateStatMin + g.rng.Intn(candidateStatSpread),
				Technical:  candidateStatMin + g.rng.Intn(candidateStatSpread),
				Speed:      candidateStatMin + g.rng.Intn(candidateStatSpread),
			},
			Salary: candidateSalaryMin + g.rng.Intn(candidateSalarySpan),
		}
		// Roughly two in five candidates favour a genre
		if g.rng.Float64() > 0.6 {
			genre := genres[g.rng.Intn(len(genres))]
			m.GenreAffinity = staff.GenreAffinity{Genre: genre, Bonus: 10 + g.rng.Intn(15)}
			m.Skills = map[string]int{genre: 20 + g.rng.Intn(40)}
		}
		out = append(out, m)
	}
	return out
}

// Projects returns n job offers drawn from the built-in templates.
func (g *Generator) Projects(n int) ([]project.Project, error) {
	out := make([]project.Project, 0, n)
	for i := 0; i < n; i++ {
		p, err := g.project(projectTemplates[g.rng.Intn(len(projectTemplates))])
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (g *Generator) project(tpl projectTemplate) (project.Project, error) {
	difficulty := utils.Clamp(tpl.difficulty+g.rng.Intn(3)-1, 1, maxDifficulty)

	stages := make([]project.Stage, 0, len(tpl.stages))
	for _, st := range tpl.stages {
		work := st.work + g.rng.Intn(4) - 2
		if work < minStageWork {
			work = minStageWork
		}
		stage, err := project.NewStage(st.name, work, focus.Weights{}, string(TriggerFor(st.name)))
		if err != nil {
			return project.Project{}, fmt.Errorf("template %s: %w", tpl.title, err)
		}
		stages = append(stages, stage)
	}

	market := 0.8 + g.rng.Float64()*0.4
	difficultyFactor := 1 + float64(difficulty-1)*0.15

	return project.Project{
		ID:          g.id("project", tpl.title),
		Name:        tpl.title,
		Genre:       tpl.genre,
		ClientType:  tpl.clientType,
		Difficulty:  difficulty,
		Stages:      stages,
		PayoutBase:  int(math.Floor(float64(tpl.payout) * market * difficultyFactor)),
		RepGainBase: int(math.Floor(float64(tpl.rep) * difficultyFactor)),
		Status:      project.StatusPending,
	}, nil
}

// TriggerFor picks the minigame a stage of this name offers, or "" for none.
func TriggerFor(stageName string) minigame.Type {
	name := strings.ToLower(stageName)
	for _, k := range triggerKeywords {
		if strings.Contains(name, k.keyword) {
			return k.trigger
		}
	}
	return ""
}

func (g *Generator) id(kind, name string) string {
	id, err := uuid.NewRandomFromReader(g.rng)
	if err != nil {
		// math/rand never fails to read
		return utils.GenerateEntityID(kind, name)
	}
	return utils.EntityID(kind, name, id)
}

