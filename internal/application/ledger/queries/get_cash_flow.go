package queries

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/andrescamacho/studiosim-go/internal/application/mediator"
	"github.com/andrescamacho/studiosim-go/internal/domain/ledger"
	"github.com/andrescamacho/studiosim-go/internal/domain/shared"
)

// Cash flow groupings
const (
	GroupByCategory = "category"
	GroupByDay      = "day"
)

// GetCashFlowQuery represents a query to generate a cash flow statement
type GetCashFlowQuery struct {
	SessionID string
	FromDay   int
	ToDay     int
	GroupBy   string // "category" (default) or "day"
}

// GetCashFlowResponse represents the cash flow statement result
type GetCashFlowResponse struct {
	Period  string
	GroupBy string
	Groups  []*CashFlowGroup
}

// CashFlowGroup is the money moved within one category or one day
type CashFlowGroup struct {
	Key          string
	TotalInflow  int
	TotalOutflow int
	NetFlow      int
	Transactions int // count
}

// GetCashFlowHandler handles the GetCashFlow query
type GetCashFlowHandler struct {
	transactionRepo ledger.TransactionRepository
}

// NewGetCashFlowHandler creates a new GetCashFlowHandler
func NewGetCashFlowHandler(transactionRepo ledger.TransactionRepository) *GetCashFlowHandler {
	return &GetCashFlowHandler{transactionRepo: transactionRepo}
}

// Handle executes the GetCashFlow query
func (h *GetCashFlowHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*GetCashFlowQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetCashFlowQuery")
	}

	groupBy := query.GroupBy
	if groupBy == "" {
		groupBy = GroupByCategory
	}
	if groupBy != GroupByCategory && groupBy != GroupByDay {
		return nil, fmt.Errorf("unsupported grouping %q: use %q or %q", groupBy, GroupByCategory, GroupByDay)
	}

	sessionID, err := shared.ParseSessionID(query.SessionID)
	if err != nil {
		return nil, fmt.Errorf("invalid session ID: %w", err)
	}

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

	return &GetCashFlowResponse{
		Period:  period(query.FromDay, query.ToDay),
		GroupBy: groupBy,
		Groups:  calculateCashFlow(groupBy, transactions),
	}, nil
}

func calculateCashFlow(groupBy string, transactions []*ledger.Transaction) []*CashFlowGroup {
	groups := make(map[string]*CashFlowGroup)
	var order []string

	for _, tx := range transactions {
		key := tx.Category().String()
		if groupBy == GroupByDay {
			key = strconv.Itoa(tx.Day())
		}

		flow, ok := groups[key]
		if !ok {
			flow = &CashFlowGroup{Key: key}
			groups[key] = flow
			order = append(order, key)
		}
		flow.Transactions++
		if tx.Amount() > 0 {
			flow.TotalInflow += tx.Amount()
		} else {
			flow.TotalOutflow -= tx.Amount()
		}
		flow.NetFlow = flow.TotalInflow - flow.TotalOutflow
	}

	// Days arrive in ledger order already; categories are listed alphabetically
	if groupBy == GroupByCategory {
		sort.Strings(order)
	}
	out := make([]*CashFlowGroup, 0, len(order))
	for _, key := range order {
		out = append(out, groups[key])
	}
	return out
}
