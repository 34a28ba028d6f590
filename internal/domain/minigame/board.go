package minigame

import (
	"fmt"
	"math"

	"github.com/andrescamacho/studiosim-go/internal/domain/shared"
)

// Key identifies one stage of one project. A key is rewarded at most once.
type Key struct {
	ProjectID  string
	StageIndex int
}

func (k Key) String() string {
	return fmt.Sprintf("%s#%d", k.ProjectID, k.StageIndex)
}

// Offer is a minigame opportunity waiting for a result.
type Offer struct {
	Key        Key
	Definition Definition
}

// Reward is the converted result of a minigame. Exactly one of the amount
// fields is non-zero for a positive score.
type Reward struct {
	Kind       RewardType
	Creativity int
	Technical  int
	WorkUnits  int
	XP         int
}

// Convert maps a score onto the definition's reward type. Negative scores
// count as zero.
func Convert(def Definition, score int) Reward {
	if score < 0 {
		score = 0
	}
	r := Reward{Kind: def.Reward}
	switch def.Reward {
	case RewardQuality:
		r.Creativity = int(math.Floor(float64(score) * float64(def.CreativeShare) / 100))
		r.Technical = score - r.Creativity
	case RewardSpeed:
		r.WorkUnits = score
	case RewardXP:
		r.XP = score
	}
	return r
}

// Board tracks the pending offer and the set of resolved keys. It is a value
// type; methods return updated copies.
type Board struct {
	resolved map[Key]struct{}
	pending  *Offer
}

// NewBoard returns an empty board
func NewBoard(resolved ...Key) Board {
	b := Board{resolved: make(map[Key]struct{}, len(resolved))}
	for _, k := range resolved {
		b.resolved[k] = struct{}{}
	}
	return b
}

// IsResolved reports whether the key has already been rewarded
func (b Board) IsResolved(k Key) bool {
	_, ok := b.resolved[k]
	return ok
}

// Resolved lists every rewarded key
func (b Board) Resolved() []Key {
	out := make([]Key, 0, len(b.resolved))
	for k := range b.resolved {
		out = append(out, k)
	}
	return out
}

// Pending returns the open offer, if any
func (b Board) Pending() (Offer, bool) {
	if b.pending == nil {
		return Offer{}, false
	}
	return *b.pending, true
}

// IsEligible reports whether a stage with the given trigger can offer a
// minigame at key.
func (b Board) IsEligible(triggerID string, key Key) bool {
	return triggerID != "" && !b.IsResolved(key)
}

// Open records an offer for key. Opening the key already pending returns the
// board unchanged.
func (b Board) Open(key Key, def Definition) (Board, Offer, error) {
	if b.IsResolved(key) {
		return b, Offer{}, shared.NewValidationError("minigame", fmt.Sprintf("stage %s already rewarded", key))
	}
	if b.pending != nil && b.pending.Key == key {
		return b, *b.pending, nil
	}
	next := b.clone()
	offer := Offer{Key: key, Definition: def}
	next.pending = &offer
	return next, offer, nil
}

// Resolve converts a score for the pending offer and marks its key as
// rewarded. current is the project's present stage key; an offer for any other
// key is stale and cannot be claimed.
func (b Board) Resolve(t Type, score int, current Key) (Board, Offer, Reward, error) {
	if b.pending == nil {
		return b, Offer{}, Reward{}, shared.NewNotFoundError("minigame offer", current.String())
	}
	offer := *b.pending
	if offer.Key != current {
		return b, Offer{}, Reward{}, shared.NewValidationError("minigame", fmt.Sprintf("offer for %s is no longer valid", offer.Key))
	}
	if offer.Definition.Type != t {
		return b, Offer{}, Reward{}, shared.NewValidationError("minigame", fmt.Sprintf("expected %s result, got %s", offer.Definition.Type, t))
	}

	next := b.clone()
	next.pending = nil
	next.resolved[offer.Key] = struct{}{}
	return next, offer, Convert(offer.Definition, score), nil
}

// Dismiss closes the pending offer without a reward. The key stays eligible.
func (b Board) Dismiss() Board {
	if b.pending == nil {
		return b
	}
	next := b.clone()
	next.pending = nil
	return next
}

// Invalidate drops a pending offer that does not belong to current.
func (b Board) Invalidate(current Key) Board {
	if b.pending == nil || b.pending.Key == current {
		return b
	}
	return b.Dismiss()
}

func (b Board) clone() Board {
	next := Board{resolved: make(map[Key]struct{}, len(b.resolved)+1)}
	for k := range b.resolved {
		next.resolved[k] = struct{}{}
	}
	if b.pending != nil {
		offer := *b.pending
		next.pending = &offer
	}
	return next
}
