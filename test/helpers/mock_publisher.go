package helpers

import (
	"context"
	"sync"

	"github.com/andrescamacho/studiosim-go/internal/domain/notification"
)

// RecordingPublisher collects published events in memory
type RecordingPublisher struct {
	mu     sync.Mutex
	events []notification.Event
	Err    error
}

// NewRecordingPublisher creates an empty publisher
func NewRecordingPublisher() *RecordingPublisher {
	return &RecordingPublisher{}
}

// Publish implements notification.Publisher
func (p *RecordingPublisher) Publish(ctx context.Context, events ...notification.Event) error {
	if p.Err != nil {
		return p.Err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
	return nil
}

// Events returns what was published, in order
func (p *RecordingPublisher) Events() []notification.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]notification.Event(nil), p.events...)
}

// Kinds returns the kinds of the published events, in order
func (p *RecordingPublisher) Kinds() []notification.Kind {
	events := p.Events()
	out := make([]notification.Kind, len(events))
	for i, e := range events {
		out[i] = e.Kind
	}
	return out
}
