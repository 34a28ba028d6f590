package ledger

import (
	"context"

	"github.com/andrescamacho/studiosim-go/internal/domain/shared"
)

// TransactionRepository persists the money journal of a session
type TransactionRepository interface {
	Create(ctx context.Context, transaction *Transaction) error

	// FindBySession returns a session's transactions, filtered and paged by opts
	FindBySession(ctx context.Context, sessionID shared.SessionID, opts QueryOptions) ([]*Transaction, error)

	CountBySession(ctx context.Context, sessionID shared.SessionID, opts QueryOptions) (int, error)
}

// QueryOptions filters transaction queries
type QueryOptions struct {
	FromDay         *int
	ToDay           *int
	Category        *Category
	TransactionType *TransactionType
	RelatedEntityID *string

	Limit  int
	Offset int

	// OrderBy is "day ASC" or "day DESC" (default)
	OrderBy string
}

// DefaultQueryOptions returns default query options
func DefaultQueryOptions() QueryOptions {
	return QueryOptions{
		Limit:   50,
		OrderBy: "day DESC",
	}
}
