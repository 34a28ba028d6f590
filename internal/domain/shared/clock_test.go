package shared_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/studiosim-go/internal/domain/shared"
)

func TestMockClock_Advance(t *testing.T) {
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	clock := shared.NewMockClock(start)

	clock.Advance(90 * time.Minute)

	assert.Equal(t, start.Add(90*time.Minute), clock.Now())
}

func TestOrRealClock(t *testing.T) {
	mock := shared.NewMockClock(time.Unix(0, 0))

	assert.Same(t, mock, shared.OrRealClock(mock))
	assert.Equal(t, time.UTC, shared.OrRealClock(nil).Now().Location())
}
