package shared

import (
	"fmt"

	"github.com/google/uuid"
)

// SessionID identifies one studio playthrough. Ledger entries and journaled
// notifications are scoped to it.
type SessionID struct {
	value string
}

// NewSessionID generates a fresh SessionID
func NewSessionID() SessionID {
	return SessionID{value: uuid.New().String()}
}

// ParseSessionID validates an existing session identifier
func ParseSessionID(id string) (SessionID, error) {
	if id == "" {
		return SessionID{}, fmt.Errorf("session_id cannot be empty")
	}
	if _, err := uuid.Parse(id); err != nil {
		return SessionID{}, fmt.Errorf("invalid session_id format: %w", err)
	}
	return SessionID{value: id}, nil
}

// MustParseSessionID parses a session identifier, panicking if invalid.
// Use this only for values read back from storage.
func MustParseSessionID(id string) SessionID {
	sid, err := ParseSessionID(id)
	if err != nil {
		panic(err)
	}
	return sid
}

func (s SessionID) String() string {
	return s.value
}

func (s SessionID) Equals(other SessionID) bool {
	return s.value == other.value
}

func (s SessionID) IsZero() bool {
	return s.value == ""
}
