package ledger

import (
	"fmt"

	"github.com/andrescamacho/studiosim-go/internal/domain/shared"
)

// ErrInvalidTransaction rejects a journal entry with a bad field
type ErrInvalidTransaction struct {
	*shared.DomainError
	Field string
}

func newInvalidTransaction(field, reason string) *ErrInvalidTransaction {
	return &ErrInvalidTransaction{
		DomainError: shared.NewDomainError(fmt.Sprintf("invalid transaction: %s - %s", field, reason)),
		Field:       field,
	}
}

// ErrBalanceInvariantViolation is returned when after != before + amount.
// It usually means a movement was journaled against a stale snapshot.
type ErrBalanceInvariantViolation struct {
	*shared.DomainError
	BalanceBefore int
	Amount        int
	BalanceAfter  int
}

func newBalanceInvariantViolation(before, amount, after int) *ErrBalanceInvariantViolation {
	return &ErrBalanceInvariantViolation{
		DomainError: shared.NewDomainError(fmt.Sprintf("balance invariant violated: %d %+d should be %d, got %d",
			before, amount, before+amount, after)),
		BalanceBefore: before,
		Amount:        amount,
		BalanceAfter:  after,
	}
}

// Expected is the balance the entry should have ended on
func (e *ErrBalanceInvariantViolation) Expected() int {
	return e.BalanceBefore + e.Amount
}
