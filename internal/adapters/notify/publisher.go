// Package notify delivers studio notifications to the journal, the log and
// the terminal.
package notify

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/andrescamacho/studiosim-go/internal/adapters/persistence"
	"github.com/andrescamacho/studiosim-go/internal/application/logging"
	"github.com/andrescamacho/studiosim-go/internal/domain/notification"
	"github.com/andrescamacho/studiosim-go/internal/domain/shared"
)

// Fanout publishes every batch to each publisher in turn. A failing
// publisher does not stop the others; their errors are joined.
type Fanout []notification.Publisher

// Publish implements notification.Publisher
func (f Fanout) Publish(ctx context.Context, events ...notification.Event) error {
	var errs []error
	for _, p := range f {
		if p == nil {
			continue
		}
		if err := p.Publish(ctx, events...); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// JournalPublisher stores events for later replay.
type JournalPublisher struct {
	repo      persistence.NotificationRepository
	sessionID shared.SessionID
}

// NewJournalPublisher creates a publisher writing to repo under sessionID
func NewJournalPublisher(repo persistence.NotificationRepository, sessionID shared.SessionID) *JournalPublisher {
	return &JournalPublisher{repo: repo, sessionID: sessionID}
}

// Publish implements notification.Publisher
func (p *JournalPublisher) Publish(ctx context.Context, events ...notification.Event) error {
	if len(events) == 0 {
		return nil
	}
	if err := p.repo.Append(ctx, p.sessionID, events...); err != nil {
		return fmt.Errorf("failed to journal notifications: %w", err)
	}
	return nil
}

// LogPublisher writes each event to the structured log. Rejections log at
// WARN, everything else at INFO.
type LogPublisher struct {
	logger logging.Logger
}

// NewLogPublisher creates a log-backed publisher
func NewLogPublisher(logger logging.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish implements notification.Publisher
func (p *LogPublisher) Publish(ctx context.Context, events ...notification.Event) error {
	for _, e := range events {
		level := "INFO"
		if e.Kind.IsError() {
			level = "WARN"
		}
		p.logger.Log(level, e.Title, map[string]interface{}{
			"kind":        string(e.Kind),
			"day":         e.Day,
			"description": e.Description,
		})
	}
	return nil
}

// ConsolePublisher prints one line per event for interactive play.
type ConsolePublisher struct {
	w io.Writer
}

// NewConsolePublisher creates a publisher printing to w
func NewConsolePublisher(w io.Writer) *ConsolePublisher {
	return &ConsolePublisher{w: w}
}

// Publish implements notification.Publisher
func (p *ConsolePublisher) Publish(ctx context.Context, events ...notification.Event) error {
	for _, e := range events {
		if _, err := fmt.Fprintln(p.w, Format(e)); err != nil {
			return err
		}
	}
	return nil
}

// Format renders an event as a single line
func Format(e notification.Event) string {
	marker := "+"
	if e.Kind.IsError() {
		marker = "!"
	}
	return fmt.Sprintf("[day %3d] %s %s: %s", e.Day, marker, e.Title, e.Description)
}
