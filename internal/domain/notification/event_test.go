package notification_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/studiosim-go/internal/domain/notification"
	"github.com/andrescamacho/studiosim-go/internal/domain/shared"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want notification.Kind
	}{
		{"funds", shared.NewInsufficientFundsError(500, 100), notification.KindInsufficientFunds},
		{"slot", shared.NewRoleSlotFilledError("b", "Producer"), notification.KindRoleSlotFilled},
		{"points", shared.NewNoPointsAvailableError("perk"), notification.KindNoPointsAvailable},
		{"busy", shared.NewStaffBusyError("a", "Working"), notification.KindStaffBusy},
		{"no project", shared.NewNoActiveProjectError(), notification.KindNoActiveProject},
		{"focus", shared.NewInvalidFocusAllocationError(90), notification.KindInvalidFocusAllocation},
		{"capacity", shared.NewWorkCapacityExhaustedError(4), notification.KindWorkCapacityExhausted},
		{"locked", shared.NewFeatureLockedError("training", 3), notification.KindFeatureLocked},
		{"not found", shared.NewNotFoundError("staff", "x"), notification.KindNotFound},
		{"wrapped", fmt.Errorf("hire: %w", shared.NewInsufficientFundsError(1, 0)), notification.KindInsufficientFunds},
		{"other", errors.New("boom"), notification.KindActionRejected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := notification.FromError(tt.err, 3)

			assert.Equal(t, tt.want, ev.Kind)
			assert.Equal(t, 3, ev.Day)
			assert.NotEmpty(t, ev.Title)
			assert.True(t, ev.Kind.IsError())
		})
	}
}

func TestFromError_Descriptions(t *testing.T) {
	ev := notification.FromError(shared.NewInsufficientFundsError(500, 120), 1)
	assert.Equal(t, "Need $500, have $120", ev.Description)

	ev = notification.FromError(shared.NewInvalidFocusAllocationError(90), 1)
	assert.Equal(t, "Focus must total 100%, got 90%", ev.Description)
}

func TestKindIsError(t *testing.T) {
	assert.False(t, notification.KindLevelUp.IsError())
	assert.False(t, notification.KindStageComplete.IsError())
}
