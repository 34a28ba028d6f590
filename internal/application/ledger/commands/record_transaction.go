package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/andrescamacho/studiosim-go/internal/adapters/metrics"
	"github.com/andrescamacho/studiosim-go/internal/application/mediator"
	"github.com/andrescamacho/studiosim-go/internal/domain/ledger"
	"github.com/andrescamacho/studiosim-go/internal/domain/shared"
)

// RecordTransactionCommand journals one money movement of a session
type RecordTransactionCommand struct {
	SessionID         string
	Day               int
	TransactionType   string
	Amount            int // positive for income, negative for expenses
	BalanceBefore     int
	BalanceAfter      int
	Description       string
	RelatedEntityType string
	RelatedEntityID   string
}

// RecordTransactionResponse represents the result of recording a transaction
type RecordTransactionResponse struct {
	TransactionID string
	RecordedAt    time.Time
}

// RecordTransactionHandler handles the RecordTransaction command
type RecordTransactionHandler struct {
	transactionRepo ledger.TransactionRepository
	clock           shared.Clock
}

// NewRecordTransactionHandler creates a new RecordTransactionHandler
func NewRecordTransactionHandler(transactionRepo ledger.TransactionRepository, clock shared.Clock) *RecordTransactionHandler {
	clock = shared.OrRealClock(clock)
	return &RecordTransactionHandler{
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

// Handle executes the RecordTransaction command
func (h *RecordTransactionHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*RecordTransactionCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *RecordTransactionCommand")
	}

	transactionType, err := ledger.ParseTransactionType(cmd.TransactionType)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction type: %w", err)
	}
	sessionID, err := shared.ParseSessionID(cmd.SessionID)
	if err != nil {
		return nil, fmt.Errorf("invalid session ID: %w", err)
	}

	transaction, err := ledger.NewTransaction(ledger.Entry{
		SessionID:         sessionID,
		Day:               cmd.Day,
		RecordedAt:        h.clock.Now(),
		Type:              transactionType,
		Amount:            cmd.Amount,
		BalanceBefore:     cmd.BalanceBefore,
		BalanceAfter:      cmd.BalanceAfter,
		Description:       cmd.Description,
		RelatedEntityType: cmd.RelatedEntityType,
		RelatedEntityID:   cmd.RelatedEntityID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	if err := h.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to persist transaction: %w", err)
	}

	metrics.RecordTransaction(
		cmd.SessionID,
		cmd.TransactionType,
		transaction.Category().String(),
		cmd.Amount,
		cmd.BalanceAfter,
	)

	return &RecordTransactionResponse{
		TransactionID: transaction.ID().String(),
		RecordedAt:    transaction.RecordedAt(),
	}, nil
}
