package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/studiosim-go/internal/application/mediator"
	"github.com/andrescamacho/studiosim-go/internal/application/studio"
	"github.com/andrescamacho/studiosim-go/internal/domain/minigame"
)

// MinigameEligibilityQuery tells whether the current stage can offer a
// minigame and whether one is already waiting.
type MinigameEligibilityQuery struct{}

type MinigameEligibilityResponse struct {
	Eligible   bool
	Pending    bool
	StageKey   string
	Definition *minigame.Definition
}

type MinigameEligibilityHandler struct {
	store studio.Store
}

func NewMinigameEligibilityHandler(store studio.Store) *MinigameEligibilityHandler {
	return &MinigameEligibilityHandler{store: store}
}

func (h *MinigameEligibilityHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	if _, ok := request.(*MinigameEligibilityQuery); !ok {
		return nil, fmt.Errorf("invalid request type: expected *MinigameEligibilityQuery")
	}

	s := h.store.Snapshot()
	resp := &MinigameEligibilityResponse{}
	if offer, ok := s.Minigames.Pending(); ok {
		def := offer.Definition
		resp.Pending = true
		resp.StageKey = offer.Key.String()
		resp.Definition = &def
		return resp, nil
	}

	if key, def, ok := s.MinigameOffer(); ok {
		resp.Eligible = true
		resp.StageKey = key.String()
		resp.Definition = &def
	}
	return resp, nil
}
