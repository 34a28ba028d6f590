package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/studiosim-go/internal/application/mediator"
	"github.com/andrescamacho/studiosim-go/internal/application/studio"
	"github.com/andrescamacho/studiosim-go/internal/domain/progression"
)

// MilestoneProgressQuery reports the player's progress toward the next
// milestone.
type MilestoneProgressQuery struct{}

type MilestoneProgressResponse struct {
	Level           int
	XP              int
	XPToNextLevel   int
	AttributePoints int
	PerkPoints      int
	WorkSessions    int
	Claimed         []int
	Features        []string
	Next            *progression.Milestone
	LevelsToNext    int
}

type MilestoneProgressHandler struct {
	store studio.Store
}

func NewMilestoneProgressHandler(store studio.Store) *MilestoneProgressHandler {
	return &MilestoneProgressHandler{store: store}
}

func (h *MilestoneProgressHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	if _, ok := request.(*MilestoneProgressQuery); !ok {
		return nil, fmt.Errorf("invalid request type: expected *MilestoneProgressQuery")
	}

	s := h.store.Snapshot()
	p := s.Player
	resp := &MilestoneProgressResponse{
		Level:           p.Level,
		XP:              p.XP,
		XPToNextLevel:   p.XPToNextLevel,
		AttributePoints: p.AttributePoints,
		PerkPoints:      p.PerkPoints,
		WorkSessions:    p.RemainingSessions(),
		Claimed:         append([]int(nil), p.ClaimedMilestones...),
		Features:        append([]string(nil), p.UnlockedFeatures...),
	}

	table := s.Catalog.Milestones
	if level, ok := table.NextMilestoneLevel(p.Level + 1); ok {
		if m, ok := table.Reward(level); ok {
			resp.Next = &m
			resp.LevelsToNext = level - p.Level
		}
	}
	return resp, nil
}
