package persistence

import (
	"time"
)

// TransactionModel represents the transactions table
type TransactionModel struct {
	ID                string    `gorm:"column:id;primaryKey"`
	SessionID         string    `gorm:"column:session_id;not null;index:idx_transactions_session_day"`
	Day               int       `gorm:"column:day;not null;index:idx_transactions_session_day"`
	RecordedAt        time.Time `gorm:"column:recorded_at;not null"`
	TransactionType   string    `gorm:"column:transaction_type;not null"`
	Category          string    `gorm:"column:category;not null;index"`
	Amount            int       `gorm:"column:amount;not null"`
	BalanceBefore     int       `gorm:"column:balance_before;not null"`
	BalanceAfter      int       `gorm:"column:balance_after;not null"`
	Description       string    `gorm:"column:description;type:text"`
	RelatedEntityType string    `gorm:"column:related_entity_type"`
	RelatedEntityID   string    `gorm:"column:related_entity_id"`
}

func (TransactionModel) TableName() string {
	return "transactions"
}

// NotificationModel represents the notifications table
type NotificationModel struct {
	ID          int       `gorm:"column:id;primaryKey;autoIncrement"`
	SessionID   string    `gorm:"column:session_id;not null;index"`
	Day         int       `gorm:"column:day;not null"`
	Kind        string    `gorm:"column:kind;not null"`
	Title       string    `gorm:"column:title;not null"`
	Description string    `gorm:"column:description;type:text"`
	IsError     bool      `gorm:"column:is_error;not null;default:false"`
	RecordedAt  time.Time `gorm:"column:recorded_at;not null"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
