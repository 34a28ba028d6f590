package script

import (
	"context"
	"sync"

	"github.com/andrescamacho/studiosim-go/internal/domain/minigame"
)

const defaultScore = 60

// ScoreRunner is a deterministic minigame.Runner that replays canned scores.
type ScoreRunner struct {
	mu      sync.Mutex
	def     int
	pending map[minigame.Type][]int
	played  []minigame.Type
}

// NewScoreRunner builds a runner from the script's score table. A zero
// default becomes 60.
func NewScoreRunner(scores MinigameScores) *ScoreRunner {
	def := scores.Default
	if def == 0 {
		def = defaultScore
	}
	pending := make(map[minigame.Type][]int, len(scores.Scores))
	for t, queue := range scores.Scores {
		pending[t] = append([]int(nil), queue...)
	}
	return &ScoreRunner{def: def, pending: pending}
}

// Run implements minigame.Runner. Difficulty does not affect canned scores.
func (r *ScoreRunner) Run(ctx context.Context, t minigame.Type, difficulty int) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.played = append(r.played, t)
	if queue := r.pending[t]; len(queue) > 0 {
		r.pending[t] = queue[1:]
		return queue[0], nil
	}
	return r.def, nil
}

// Played lists the minigames run so far, in order
func (r *ScoreRunner) Played() []minigame.Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]minigame.Type(nil), r.played...)
}
