package ledger

import (
	"fmt"
	"time"

	"github.com/andrescamacho/studiosim-go/internal/domain/shared"
)

// Transaction is one immutable entry in a session's money journal.
type Transaction struct {
	id                TransactionID
	sessionID         shared.SessionID
	day               int
	recordedAt        time.Time
	transactionType   TransactionType
	category          Category
	amount            int // positive for income
	balanceBefore     int
	balanceAfter      int
	description       string
	relatedEntityType string
	relatedEntityID   string
}

// Entry carries the values of a new transaction
type Entry struct {
	SessionID         shared.SessionID
	Day               int
	RecordedAt        time.Time
	Type              TransactionType
	Amount            int
	BalanceBefore     int
	BalanceAfter      int
	Description       string
	RelatedEntityType string
	RelatedEntityID   string
}

// NewTransaction validates an entry and assigns it an ID
func NewTransaction(e Entry) (*Transaction, error) {
	if e.SessionID.IsZero() {
		return nil, newInvalidTransaction("session_id", "session_id cannot be zero")
	}
	category, err := e.Type.ToCategory()
	if err != nil {
		return nil, newInvalidTransaction("transaction_type", err.Error())
	}

	t := &Transaction{
		id:                NewTransactionID(),
		sessionID:         e.SessionID,
		day:               e.Day,
		recordedAt:        e.RecordedAt,
		transactionType:   e.Type,
		category:          category,
		amount:            e.Amount,
		balanceBefore:     e.BalanceBefore,
		balanceAfter:      e.BalanceAfter,
		description:       e.Description,
		relatedEntityType: e.RelatedEntityType,
		relatedEntityID:   e.RelatedEntityID,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// ReconstructTransaction rebuilds a stored transaction without validation.
func ReconstructTransaction(id TransactionID, category Category, e Entry) *Transaction {
	return &Transaction{
		id:                id,
		sessionID:         e.SessionID,
		day:               e.Day,
		recordedAt:        e.RecordedAt,
		transactionType:   e.Type,
		category:          category,
		amount:            e.Amount,
		balanceBefore:     e.BalanceBefore,
		balanceAfter:      e.BalanceAfter,
		description:       e.Description,
		relatedEntityType: e.RelatedEntityType,
		relatedEntityID:   e.RelatedEntityID,
	}
}

// Validate checks the transaction's invariants
func (t *Transaction) Validate() error {
	if t.amount == 0 {
		return newInvalidTransaction("amount", "amount cannot be zero")
	}
	if t.day < 1 {
		return newInvalidTransaction("day", fmt.Sprintf("day must be positive, got %d", t.day))
	}

	if t.balanceAfter != t.balanceBefore+t.amount {
		return newBalanceInvariantViolation(t.balanceBefore, t.amount, t.balanceAfter)
	}
	return nil
}

func (t *Transaction) ID() TransactionID                { return t.id }
func (t *Transaction) SessionID() shared.SessionID      { return t.sessionID }
func (t *Transaction) Day() int                         { return t.day }
func (t *Transaction) RecordedAt() time.Time            { return t.recordedAt }
func (t *Transaction) TransactionType() TransactionType { return t.transactionType }
func (t *Transaction) Category() Category               { return t.category }
func (t *Transaction) Amount() int                      { return t.amount }
func (t *Transaction) BalanceBefore() int               { return t.balanceBefore }
func (t *Transaction) BalanceAfter() int                { return t.balanceAfter }
func (t *Transaction) Description() string              { return t.description }
func (t *Transaction) RelatedEntityType() string        { return t.relatedEntityType }
func (t *Transaction) RelatedEntityID() string          { return t.relatedEntityID }

// IsIncome returns true if money came in
func (t *Transaction) IsIncome() bool {
	return t.amount > 0
}

func (t *Transaction) String() string {
	return fmt.Sprintf("Transaction[%s, day=%d, type=%s, amount=%d, balance=%d->%d]",
		t.id, t.day, t.transactionType, t.amount, t.balanceBefore, t.balanceAfter)
}
