package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/studiosim-go/internal/application/logging"
	"github.com/andrescamacho/studiosim-go/internal/application/mediator"
	"github.com/andrescamacho/studiosim-go/internal/application/studio"
	"github.com/andrescamacho/studiosim-go/internal/domain/game"
	"github.com/andrescamacho/studiosim-go/internal/domain/minigame"
)

// PlayMinigameCommand opens the current stage's minigame, plays it with the
// configured runner and hands the score back to the engine.
type PlayMinigameCommand struct{}

// PlayMinigameResponse reports the score and the final dispatch outcome
type PlayMinigameResponse struct {
	Type   minigame.Type
	Score  int
	Result *DispatchActionResponse
}

// PlayMinigameHandler handles the PlayMinigame command
type PlayMinigameHandler struct {
	store    studio.Store
	dispatch *DispatchActionHandler
	runner   minigame.Runner
}

// NewPlayMinigameHandler creates a new PlayMinigameHandler
func NewPlayMinigameHandler(store studio.Store, dispatch *DispatchActionHandler, runner minigame.Runner) *PlayMinigameHandler {
	return &PlayMinigameHandler{store: store, dispatch: dispatch, runner: runner}
}

// Handle executes the PlayMinigame command
func (h *PlayMinigameHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	if _, ok := request.(*PlayMinigameCommand); !ok {
		return nil, fmt.Errorf("invalid request type: expected *PlayMinigameCommand")
	}

	offer, ok := h.store.Snapshot().Minigames.Pending()
	if !ok {
		opened, err := h.send(ctx, game.OpenMinigame{})
		if err != nil || opened.Rejected {
			return &PlayMinigameResponse{Result: opened}, err
		}
		if offer, ok = opened.State.Minigames.Pending(); !ok {
			return nil, fmt.Errorf("minigame opened but no offer is pending")
		}
	}

	def := offer.Definition
	score, err := h.runner.Run(ctx, def.Type, def.Difficulty)
	if err != nil {
		logging.LoggerFromContext(ctx).Log("WARN", "minigame abandoned", map[string]interface{}{
			"minigame": string(def.Type),
			"error":    err.Error(),
		})
		dismissed, dErr := h.send(ctx, game.MinigameDismissed{})
		if dErr != nil {
			return nil, dErr
		}
		return &PlayMinigameResponse{Type: def.Type, Result: dismissed}, fmt.Errorf("minigame %s failed: %w", def.Type, err)
	}

	completed, err := h.send(ctx, game.MinigameCompleted{Type: def.Type, Score: score})
	if err != nil {
		return nil, err
	}
	return &PlayMinigameResponse{Type: def.Type, Score: score, Result: completed}, nil
}

func (h *PlayMinigameHandler) send(ctx context.Context, action game.Action) (*DispatchActionResponse, error) {
	resp, err := h.dispatch.Handle(ctx, &DispatchActionCommand{Action: action})
	if err != nil {
		return nil, err
	}
	return resp.(*DispatchActionResponse), nil
}
