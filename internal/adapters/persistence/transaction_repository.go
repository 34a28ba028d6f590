package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/studiosim-go/internal/domain/ledger"
	"github.com/andrescamacho/studiosim-go/internal/domain/shared"
)

// GormTransactionRepository implements ledger.TransactionRepository using GORM
type GormTransactionRepository struct {
	db *gorm.DB
}

// NewGormTransactionRepository creates a new GORM transaction repository
func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

// Create persists a new transaction
func (r *GormTransactionRepository) Create(ctx context.Context, transaction *ledger.Transaction) error {
	if err := r.db.WithContext(ctx).Create(transactionToModel(transaction)).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// FindBySession retrieves a session's transactions with optional filtering
func (r *GormTransactionRepository) FindBySession(ctx context.Context, sessionID shared.SessionID, opts ledger.QueryOptions) ([]*ledger.Transaction, error) {
	query := r.db.WithContext(ctx).Where("session_id = ?", sessionID.String())
	query = applyFilters(query, opts)

	orderBy := "day DESC"
	if opts.OrderBy != "" {
		orderBy = opts.OrderBy
	}
	// recorded_at breaks ties between movements of the same day
	query = query.Order(orderBy).Order("recorded_at")

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		query = query.Offset(opts.Offset)
	}

	var models []TransactionModel
	if err := query.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find transactions: %w", err)
	}

	transactions := make([]*ledger.Transaction, len(models))
	for i := range models {
		tx, err := modelToTransaction(&models[i])
		if err != nil {
			return nil, fmt.Errorf("failed to convert transaction model: %w", err)
		}
		transactions[i] = tx
	}
	return transactions, nil
}

// CountBySession returns the count of transactions matching the criteria
func (r *GormTransactionRepository) CountBySession(ctx context.Context, sessionID shared.SessionID, opts ledger.QueryOptions) (int, error) {
	query := r.db.WithContext(ctx).Model(&TransactionModel{}).Where("session_id = ?", sessionID.String())
	query = applyFilters(query, opts)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return int(count), nil
}

func applyFilters(query *gorm.DB, opts ledger.QueryOptions) *gorm.DB {
	if opts.FromDay != nil {
		query = query.Where("day >= ?", *opts.FromDay)
	}
	if opts.ToDay != nil {
		query = query.Where("day <= ?", *opts.ToDay)
	}
	if opts.Category != nil {
		query = query.Where("category = ?", opts.Category.String())
	}
	if opts.TransactionType != nil {
		query = query.Where("transaction_type = ?", opts.TransactionType.String())
	}
	if opts.RelatedEntityID != nil {
		query = query.Where("related_entity_id = ?", *opts.RelatedEntityID)
	}
	return query
}

func modelToTransaction(model *TransactionModel) (*ledger.Transaction, error) {
	id, err := ledger.ParseTransactionID(model.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction ID in database: %w", err)
	}
	sessionID, err := shared.ParseSessionID(model.SessionID)
	if err != nil {
		return nil, fmt.Errorf("invalid session ID in database: %w", err)
	}
	transactionType, err := ledger.ParseTransactionType(model.TransactionType)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction type in database: %w", err)
	}
	category, err := ledger.ParseCategory(model.Category)
	if err != nil {
		return nil, fmt.Errorf("invalid category in database: %w", err)
	}

	return ledger.ReconstructTransaction(id, category, ledger.Entry{
		SessionID:         sessionID,
		Day:               model.Day,
		RecordedAt:        model.RecordedAt,
		Type:              transactionType,
		Amount:            model.Amount,
		BalanceBefore:     model.BalanceBefore,
		BalanceAfter:      model.BalanceAfter,
		Description:       model.Description,
		RelatedEntityType: model.RelatedEntityType,
		RelatedEntityID:   model.RelatedEntityID,
	}), nil
}

func transactionToModel(tx *ledger.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:                tx.ID().String(),
		SessionID:         tx.SessionID().String(),
		Day:               tx.Day(),
		RecordedAt:        tx.RecordedAt(),
		TransactionType:   tx.TransactionType().String(),
		Category:          tx.Category().String(),
		Amount:            tx.Amount(),
		BalanceBefore:     tx.BalanceBefore(),
		BalanceAfter:      tx.BalanceAfter(),
		Description:       tx.Description(),
		RelatedEntityType: tx.RelatedEntityType(),
		RelatedEntityID:   tx.RelatedEntityID(),
	}
}
