package queries

import (
	"context"
	"fmt"
	"sort"

	"github.com/andrescamacho/studiosim-go/internal/application/mediator"
	"github.com/andrescamacho/studiosim-go/internal/application/studio"
	"github.com/andrescamacho/studiosim-go/internal/domain/scoring"
	"github.com/andrescamacho/studiosim-go/internal/domain/shared"
	"github.com/andrescamacho/studiosim-go/internal/domain/staff"
)

// RankStaffQuery scores every hired member (or candidate) against a genre.
// An empty Genre uses the active project's genre.
type RankStaffQuery struct {
	Genre      string
	Candidates bool
}

type StaffRanking struct {
	StaffID string
	Name    string
	Role    string
	Status  string
	Match   int
	Rating  string
}

type RankStaffResponse struct {
	Genre    string
	Rankings []StaffRanking
}

type RankStaffHandler struct {
	store studio.Store
}

func NewRankStaffHandler(store studio.Store) *RankStaffHandler {
	return &RankStaffHandler{store: store}
}

func (h *RankStaffHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*RankStaffQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *RankStaffQuery")
	}

	s := h.store.Snapshot()
	genre := query.Genre
	if genre == "" {
		if s.ActiveProject == nil {
			return nil, shared.NewNoActiveProjectError()
		}
		genre = s.ActiveProject.Genre
	}

	roster := s.Staff
	if query.Candidates {
		roster = s.Candidates
	}
	requirement := s.Catalog.GenreRequirements.For(genre)

	rankings := make([]StaffRanking, 0, roster.Len())
	for _, m := range roster.Members() {
		rankings = append(rankings, rank(m, genre, requirement))
	}
	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].Match > rankings[j].Match
	})
	return &RankStaffResponse{Genre: genre, Rankings: rankings}, nil
}

func rank(m staff.Member, genre string, req scoring.GenreRequirement) StaffRanking {
	score := scoring.StaffProjectMatch(m.MatchInput(genre), req)
	return StaffRanking{
		StaffID: m.ID,
		Name:    m.Name,
		Role:    m.Role.String(),
		Status:  m.Status.String(),
		Match:   score,
		Rating:  scoring.MatchRating(score),
	}
}
