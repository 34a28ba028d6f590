package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/andrescamacho/studiosim-go/internal/adapters/metrics"
	ledgerCmd "github.com/andrescamacho/studiosim-go/internal/application/ledger/commands"
	"github.com/andrescamacho/studiosim-go/internal/application/logging"
	"github.com/andrescamacho/studiosim-go/internal/application/mediator"
	"github.com/andrescamacho/studiosim-go/internal/application/studio"
	"github.com/andrescamacho/studiosim-go/internal/domain/game"
	"github.com/andrescamacho/studiosim-go/internal/domain/notification"
)

// DispatchActionCommand applies one player action to the session
type DispatchActionCommand struct {
	Action game.Action
}

// DispatchActionResponse carries the committed state and what the action
// produced. A rejected action leaves State as it was and Events holds the
// matching error notification.
type DispatchActionResponse struct {
	State     *game.State
	Events    []game.Event
	Movements []game.Movement
	Rejected  bool
	Reason    error
}

// IsRejected reports whether the reducer refused the action
func (r *DispatchActionResponse) IsRejected() bool {
	return r.Rejected
}

// DispatchActionHandler reduces actions against the store. Events go to the
// publisher and money movements to the ledger.
type DispatchActionHandler struct {
	store     studio.Store
	publisher notification.Publisher
	mediator  mediator.Mediator
}

// NewDispatchActionHandler creates a handler. A nil mediator disables ledger
// journaling.
func NewDispatchActionHandler(store studio.Store, publisher notification.Publisher, med mediator.Mediator) *DispatchActionHandler {
	return &DispatchActionHandler{store: store, publisher: publisher, mediator: med}
}

// Handle executes the DispatchAction command
func (h *DispatchActionHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*DispatchActionCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *DispatchActionCommand")
	}
	if cmd.Action == nil {
		return nil, fmt.Errorf("action is required")
	}
	logger := logging.LoggerFromContext(ctx)

	var (
		result    game.Result
		rejection error
	)
	state, err := h.store.Update(ctx, func(s *game.State) (*game.State, error) {
		res, err := game.Reduce(s, cmd.Action)
		if err != nil {
			rejection = err
			return nil, err
		}
		result = res
		return res.State, nil
	})

	switch {
	case rejection != nil:
		event := notification.FromError(rejection, state.Day)
		logger.Log("WARN", "action rejected", map[string]interface{}{
			"action": cmd.Action.Name(),
			"kind":   string(event.Kind),
			"reason": rejection.Error(),
		})
		metrics.RecordAction(cmd.Action.Name(), string(event.Kind))
		if err := h.publish(ctx, event); err != nil {
			return nil, err
		}
		return &DispatchActionResponse{State: state, Events: []game.Event{event}, Rejected: true, Reason: rejection}, nil
	case err != nil:
		return nil, fmt.Errorf("failed to apply %s: %w", cmd.Action.Name(), err)
	}

	logger.Log("DEBUG", "action applied", map[string]interface{}{
		"action": cmd.Action.Name(),
		"day":    state.Day,
		"events": len(result.Events),
	})
	metrics.RecordAction(cmd.Action.Name(), "applied")
	metrics.RecordStudioState(state)

	if err := h.journal(ctx, state.Day, result.Movements); err != nil {
		return nil, err
	}
	if err := h.publish(ctx, result.Events...); err != nil {
		return nil, err
	}

	return &DispatchActionResponse{State: state, Events: result.Events, Movements: result.Movements}, nil
}

func (h *DispatchActionHandler) publish(ctx context.Context, events ...game.Event) error {
	if h.publisher == nil || len(events) == 0 {
		return nil
	}
	if err := h.publisher.Publish(ctx, events...); err != nil {
		return fmt.Errorf("failed to publish events: %w", err)
	}
	return nil
}

func (h *DispatchActionHandler) journal(ctx context.Context, day int, movements []game.Movement) error {
	if h.mediator == nil {
		return nil
	}
	var errs []error
	for _, m := range movements {
		_, err := h.mediator.Send(ctx, &ledgerCmd.RecordTransactionCommand{
			SessionID:         h.store.SessionID().String(),
			Day:               day,
			TransactionType:   string(m.Kind),
			Amount:            m.Amount,
			BalanceBefore:     m.BalanceBefore,
			BalanceAfter:      m.BalanceAfter,
			Description:       m.Description,
			RelatedEntityType: m.EntityType,
			RelatedEntityID:   m.EntityID,
		})
		if err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("failed to journal transactions: %w", err)
	}
	return nil
}
