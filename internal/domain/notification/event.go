package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/andrescamacho/studiosim-go/internal/domain/shared"
)

// Kind is the semantic type of a notification.
type Kind string

const (
	KindLevelUp                Kind = "LevelUp"
	KindMilestoneAchieved      Kind = "MilestoneAchieved"
	KindStaffHired             Kind = "StaffHired"
	KindStageComplete          Kind = "StageComplete"
	KindProjectCompleted       Kind = "ProjectCompleted"
	KindProjectStarted         Kind = "ProjectStarted"
	KindInsufficientFunds      Kind = "InsufficientFunds"
	KindRoleSlotFilled         Kind = "RoleSlotFilled"
	KindNoPointsAvailable      Kind = "NoPointsAvailable"
	KindStaffBusy              Kind = "StaffBusy"
	KindNoActiveProject        Kind = "NoActiveProject"
	KindInvalidFocusAllocation Kind = "InvalidFocusAllocation"
	KindWorkCapacityExhausted  Kind = "WorkCapacityExhausted"
	KindFeatureLocked          Kind = "FeatureLocked"
	KindNotFound               Kind = "NotFound"
	KindActionRejected         Kind = "ActionRejected"
	KindStaffLevelUp           Kind = "StaffLevelUp"
	KindTrainingStarted        Kind = "TrainingStarted"
	KindTrainingComplete       Kind = "TrainingComplete"
	KindPracticeComplete       Kind = "PracticeComplete"
	KindMinigameAvailable      Kind = "MinigameAvailable"
	KindMinigameResolved       Kind = "MinigameResolved"
	KindEquipmentPurchased     Kind = "EquipmentPurchased"
	KindSalariesPaid           Kind = "SalariesPaid"
)

// IsError reports whether the kind describes a rejected action.
func (k Kind) IsError() bool {
	switch k {
	case KindInsufficientFunds, KindRoleSlotFilled, KindNoPointsAvailable, KindStaffBusy,
		KindNoActiveProject, KindInvalidFocusAllocation, KindWorkCapacityExhausted,
		KindFeatureLocked, KindNotFound, KindActionRejected:
		return true
	default:
		return false
	}
}

// Event is a semantic notification for the presentation layer.
type Event struct {
	Kind        Kind
	Title       string
	Description string
	Day         int
}

// New builds an event
func New(kind Kind, day int, title, format string, args ...interface{}) Event {
	return Event{Kind: kind, Title: title, Description: fmt.Sprintf(format, args...), Day: day}
}

// FromError maps a rejected action's error onto its semantic event.
func FromError(err error, day int) Event {
	var (
		funds     *shared.InsufficientFundsError
		slot      *shared.RoleSlotFilledError
		points    *shared.NoPointsAvailableError
		busy      *shared.StaffBusyError
		noProject *shared.NoActiveProjectError
		focus     *shared.InvalidFocusAllocationError
		capacity  *shared.WorkCapacityExhaustedError
		locked    *shared.FeatureLockedError
		notFound  *shared.NotFoundError
	)

	switch {
	case errors.As(err, &funds):
		return New(KindInsufficientFunds, day, "Insufficient Funds", "Need $%d, have $%d", funds.Required, funds.Available)
	case errors.As(err, &slot):
		return New(KindRoleSlotFilled, day, "Role Already Filled", "A %s is already working on this project", slot.Role)
	case errors.As(err, &points):
		return New(KindNoPointsAvailable, day, "No Points Available", "You have no %s points to spend", points.Kind)
	case errors.As(err, &busy):
		return New(KindStaffBusy, day, "Staff Busy", "%s is currently %s", busy.StaffID, busy.Status)
	case errors.As(err, &noProject):
		return New(KindNoActiveProject, day, "No Active Project", "Start a project first")
	case errors.As(err, &focus):
		return New(KindInvalidFocusAllocation, day, "Invalid Focus", "Focus must total 100%%, got %d%%", focus.Sum)
	case errors.As(err, &capacity):
		return New(KindWorkCapacityExhausted, day, "Out of Energy", "All %d work sessions used today", capacity.Capacity)
	case errors.As(err, &locked):
		return New(KindFeatureLocked, day, "Feature Locked", "%s", locked.Error())
	case errors.As(err, &notFound):
		return New(KindNotFound, day, "Not Found", "%s", notFound.Error())
	default:
		return New(KindActionRejected, day, "Action Rejected", "%s", err.Error())
	}
}

// Publisher delivers events to whoever renders them.
type Publisher interface {
	Publish(ctx context.Context, events ...Event) error
}
