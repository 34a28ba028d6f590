package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/studiosim-go/internal/application/mediator"
	"github.com/andrescamacho/studiosim-go/internal/domain/ledger"
	"github.com/andrescamacho/studiosim-go/internal/domain/shared"
)

// GetProfitLossQuery summarises a session's journal between two days,
// inclusive. Zero bounds are open.
type GetProfitLossQuery struct {
	SessionID string
	FromDay   int
	ToDay     int
}

// GetProfitLossResponse is a profit and loss statement
type GetProfitLossResponse struct {
	Period           string
	TotalRevenue     int
	TotalExpenses    int
	NetProfit        int
	RevenueBreakdown map[string]int // category -> amount
	ExpenseBreakdown map[string]int // category -> amount, positive
}

// GetProfitLossHandler handles the GetProfitLoss query
type GetProfitLossHandler struct {
	transactionRepo ledger.TransactionRepository
}

// NewGetProfitLossHandler creates a new GetProfitLossHandler
func NewGetProfitLossHandler(transactionRepo ledger.TransactionRepository) *GetProfitLossHandler {
	return &GetProfitLossHandler{transactionRepo: transactionRepo}
}

// Handle executes the GetProfitLoss query
func (h *GetProfitLossHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*GetProfitLossQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetProfitLossQuery")
	}

	sessionID, err := shared.ParseSessionID(query.SessionID)
	if err != nil {
		return nil, fmt.Errorf("invalid session ID: %w", err)
	}

	// Limit 0 returns every transaction
	opts := ledger.QueryOptions{OrderBy: "day ASC"}
	if query.FromDay > 0 {
		opts.FromDay = &query.FromDay
	}
	if query.ToDay > 0 {
		opts.ToDay = &query.ToDay
	}

	transactions, err := h.transactionRepo.FindBySession(ctx, sessionID, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	return calculateProfitLoss(query, transactions), nil
}

func calculateProfitLoss(query *GetProfitLossQuery, transactions []*ledger.Transaction) *GetProfitLossResponse {
	resp := &GetProfitLossResponse{
		Period:           period(query.FromDay, query.ToDay),
		RevenueBreakdown: make(map[string]int),
		ExpenseBreakdown: make(map[string]int),
	}

	for _, tx := range transactions {
		category := tx.Category().String()
		if tx.IsIncome() {
			resp.RevenueBreakdown[category] += tx.Amount()
			resp.TotalRevenue += tx.Amount()
		} else {
			resp.ExpenseBreakdown[category] -= tx.Amount()
			resp.TotalExpenses -= tx.Amount()
		}
	}
	resp.NetProfit = resp.TotalRevenue - resp.TotalExpenses
	return resp
}

func period(from, to int) string {
	switch {
	case from <= 0 && to <= 0:
		return "all days"
	case to <= 0:
		return fmt.Sprintf("day %d onwards", from)
	case from <= 0:
		return fmt.Sprintf("up to day %d", to)
	default:
		return fmt.Sprintf("day %d to day %d", from, to)
	}
}
