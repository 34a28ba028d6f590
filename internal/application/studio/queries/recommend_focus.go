package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/studiosim-go/internal/application/mediator"
	"github.com/andrescamacho/studiosim-go/internal/application/studio"
	"github.com/andrescamacho/studiosim-go/internal/domain/focus"
	"github.com/andrescamacho/studiosim-go/internal/domain/shared"
)

// RecommendFocusQuery compares the current focus split with the optimal one
// for the active stage.
type RecommendFocusQuery struct{}

type RecommendFocusResponse struct {
	ProjectID     string
	StageName     string
	Current       focus.Allocation
	Optimal       focus.Allocation
	Reasoning     string
	FromStaff     bool
	Effectiveness focus.Effectiveness
	Suggestions   []focus.Suggestion
}

type RecommendFocusHandler struct {
	store studio.Store
}

func NewRecommendFocusHandler(store studio.Store) *RecommendFocusHandler {
	return &RecommendFocusHandler{store: store}
}

func (h *RecommendFocusHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	if _, ok := request.(*RecommendFocusQuery); !ok {
		return nil, fmt.Errorf("invalid request type: expected *RecommendFocusQuery")
	}

	s := h.store.Snapshot()
	optimal, ok := s.OptimalFocus()
	if !ok {
		return nil, shared.NewNoActiveProjectError()
	}
	stage, _ := s.ActiveProject.CurrentStage()

	return &RecommendFocusResponse{
		ProjectID:     s.ActiveProject.ID,
		StageName:     stage.Name,
		Current:       s.Focus,
		Optimal:       optimal.Allocation,
		Reasoning:     optimal.Reasoning,
		FromStaff:     optimal.FromStaff,
		Effectiveness: focus.Evaluate(s.Focus, optimal.Allocation),
		Suggestions:   focus.Suggest(s.Focus, optimal.Allocation),
	}, nil
}
