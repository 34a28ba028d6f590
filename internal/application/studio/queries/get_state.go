package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/studiosim-go/internal/application/mediator"
	"github.com/andrescamacho/studiosim-go/internal/application/studio"
	"github.com/andrescamacho/studiosim-go/internal/domain/game"
)

// GetStateQuery reads the latest committed snapshot
type GetStateQuery struct{}

type GetStateResponse struct {
	SessionID string
	Version   int
	State     *game.State
}

type GetStateHandler struct {
	store studio.Store
}

func NewGetStateHandler(store studio.Store) *GetStateHandler {
	return &GetStateHandler{store: store}
}

func (h *GetStateHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	if _, ok := request.(*GetStateQuery); !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetStateQuery")
	}
	return &GetStateResponse{
		SessionID: h.store.SessionID().String(),
		Version:   h.store.Version(),
		State:     h.store.Snapshot().Clone(),
	}, nil
}
