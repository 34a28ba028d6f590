package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/studiosim-go/internal/domain/notification"
	"github.com/andrescamacho/studiosim-go/internal/domain/shared"
)

// NotificationRepository journals the notifications of a session
type NotificationRepository interface {
	Append(ctx context.Context, sessionID shared.SessionID, events ...notification.Event) error

	// List returns journaled notifications oldest first. A nil kind matches
	// every kind; limit 0 means no limit.
	List(ctx context.Context, sessionID shared.SessionID, kind *notification.Kind, limit, offset int) ([]notification.Event, error)
}

// GormNotificationRepository is a GORM-based implementation
type GormNotificationRepository struct {
	db    *gorm.DB
	clock shared.Clock
}

// NewGormNotificationRepository creates a notification journal. If clock is
// nil the real clock is used.
func NewGormNotificationRepository(db *gorm.DB, clock shared.Clock) *GormNotificationRepository {
	return &GormNotificationRepository{db: db, clock: shared.OrRealClock(clock)}
}

// Append stores events in one batch
func (r *GormNotificationRepository) Append(ctx context.Context, sessionID shared.SessionID, events ...notification.Event) error {
	if len(events) == 0 {
		return nil
	}
	now := r.clock.Now()
	models := make([]NotificationModel, len(events))
	for i, e := range events {
		models[i] = NotificationModel{
			SessionID:   sessionID.String(),
			Day:         e.Day,
			Kind:        string(e.Kind),
			Title:       e.Title,
			Description: e.Description,
			IsError:     e.Kind.IsError(),
			RecordedAt:  now,
		}
	}
	if err := r.db.WithContext(ctx).Create(&models).Error; err != nil {
		return fmt.Errorf("failed to journal notifications: %w", err)
	}
	return nil
}

// List retrieves journaled notifications
func (r *GormNotificationRepository) List(ctx context.Context, sessionID shared.SessionID, kind *notification.Kind, limit, offset int) ([]notification.Event, error) {
	query := r.db.WithContext(ctx).Where("session_id = ?", sessionID.String())
	if kind != nil {
		query = query.Where("kind = ?", string(*kind))
	}
	query = query.Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var models []NotificationModel
	if err := query.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	events := make([]notification.Event, len(models))
	for i, m := range models {
		events[i] = notification.Event{
			Kind:        notification.Kind(m.Kind),
			Title:       m.Title,
			Description: m.Description,
			Day:         m.Day,
		}
	}
	return events, nil
}
