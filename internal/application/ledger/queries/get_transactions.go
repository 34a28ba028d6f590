package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/andrescamacho/studiosim-go/internal/application/mediator"
	"github.com/andrescamacho/studiosim-go/internal/domain/ledger"
	"github.com/andrescamacho/studiosim-go/internal/domain/shared"
)

// GetTransactionsQuery lists a session's journal
type GetTransactionsQuery struct {
	SessionID       string
	FromDay         *int
	ToDay           *int
	Category        *string
	TransactionType *string
	RelatedEntityID *string
	Limit           int
	Offset          int
	OrderBy         string
}

// GetTransactionsResponse represents the result of the query
type GetTransactionsResponse struct {
	Transactions []*TransactionDTO
	Total        int
}

// TransactionDTO represents a transaction data transfer object
type TransactionDTO struct {
	ID                string
	SessionID         string
	Day               int
	RecordedAt        time.Time
	Type              string
	Category          string
	Amount            int
	BalanceBefore     int
	BalanceAfter      int
	Description       string
	RelatedEntityType string
	RelatedEntityID   string
}

// GetTransactionsHandler handles the GetTransactions query
type GetTransactionsHandler struct {
	transactionRepo ledger.TransactionRepository
}

// NewGetTransactionsHandler creates a new GetTransactionsHandler
func NewGetTransactionsHandler(transactionRepo ledger.TransactionRepository) *GetTransactionsHandler {
	return &GetTransactionsHandler{transactionRepo: transactionRepo}
}

// Handle executes the GetTransactions query
func (h *GetTransactionsHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*GetTransactionsQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetTransactionsQuery")
	}

	sessionID, err := shared.ParseSessionID(query.SessionID)
	if err != nil {
		return nil, fmt.Errorf("invalid session ID: %w", err)
	}
	opts, err := buildQueryOptions(query)
	if err != nil {
		return nil, err
	}

	transactions, err := h.transactionRepo.FindBySession(ctx, sessionID, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	total, err := h.transactionRepo.CountBySession(ctx, sessionID, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}

	dtos := make([]*TransactionDTO, len(transactions))
	for i, tx := range transactions {
		dtos[i] = toDTO(tx)
	}
	return &GetTransactionsResponse{Transactions: dtos, Total: total}, nil
}

func buildQueryOptions(query *GetTransactionsQuery) (ledger.QueryOptions, error) {
	opts := ledger.DefaultQueryOptions()
	opts.FromDay = query.FromDay
	opts.ToDay = query.ToDay
	opts.RelatedEntityID = query.RelatedEntityID

	if query.Category != nil {
		category, err := ledger.ParseCategory(*query.Category)
		if err != nil {
			return opts, fmt.Errorf("invalid category: %w", err)
		}
		opts.Category = &category
	}
	if query.TransactionType != nil {
		txType, err := ledger.ParseTransactionType(*query.TransactionType)
		if err != nil {
			return opts, fmt.Errorf("invalid transaction type: %w", err)
		}
		opts.TransactionType = &txType
	}

	if query.Limit > 0 {
		opts.Limit = query.Limit
	}
	opts.Offset = query.Offset
	if query.OrderBy != "" {
		opts.OrderBy = query.OrderBy
	}
	return opts, nil
}

func toDTO(tx *ledger.Transaction) *TransactionDTO {
	return &TransactionDTO{
		ID:                tx.ID().String(),
		SessionID:         tx.SessionID().String(),
		Day:               tx.Day(),
		RecordedAt:        tx.RecordedAt(),
		Type:              tx.TransactionType().String(),
		Category:          tx.Category().String(),
		Amount:            tx.Amount(),
		BalanceBefore:     tx.BalanceBefore(),
		BalanceAfter:      tx.BalanceAfter(),
		Description:       tx.Description(),
		RelatedEntityType: tx.RelatedEntityType(),
		RelatedEntityID:   tx.RelatedEntityID(),
	}
}
