package shared

import "fmt"

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// Economy errors

type InsufficientFundsError struct {
	*DomainError
	Required  int
	Available int
}

func NewInsufficientFundsError(required, available int) *InsufficientFundsError {
	return &InsufficientFundsError{
		DomainError: NewDomainError(fmt.Sprintf("insufficient funds: need %d, have %d", required, available)),
		Required:    required,
		Available:   available,
	}
}

// Staff errors

type StaffError struct {
	*DomainError
	StaffID string
}

func NewStaffError(staffID, message string) *StaffError {
	return &StaffError{DomainError: NewDomainError(message), StaffID: staffID}
}

// RoleSlotFilledError is returned when the active project already has a member
// of the requested role.
type RoleSlotFilledError struct {
	*StaffError
	Role string
}

func NewRoleSlotFilledError(staffID, role string) *RoleSlotFilledError {
	return &RoleSlotFilledError{
		StaffError: NewStaffError(staffID, fmt.Sprintf("a %s is already assigned to the active project", role)),
		Role:       role,
	}
}

// StaffBusyError is returned when an action requires a staff member who is not
// in a compatible status.
type StaffBusyError struct {
	*StaffError
	Status string
}

func NewStaffBusyError(staffID, status string) *StaffBusyError {
	return &StaffBusyError{
		StaffError: NewStaffError(staffID, fmt.Sprintf("staff %s is busy (%s)", staffID, status)),
		Status:     status,
	}
}

// Project errors

type NoActiveProjectError struct {
	*DomainError
}

func NewNoActiveProjectError() *NoActiveProjectError {
	return &NoActiveProjectError{DomainError: NewDomainError("no active project")}
}

// InvalidTransitionError reports a status change outside the allowed graph.
type InvalidTransitionError struct {
	*DomainError
	From string
	To   string
}

func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{
		DomainError: NewDomainError(fmt.Sprintf("cannot transition from %s to %s", from, to)),
		From:        from,
		To:          to,
	}
}

// Focus errors

type InvalidFocusAllocationError struct {
	*DomainError
	Sum int
}

func NewInvalidFocusAllocationError(sum int) *InvalidFocusAllocationError {
	return &InvalidFocusAllocationError{
		DomainError: NewDomainError(fmt.Sprintf("focus allocation must sum to 100, got %d", sum)),
		Sum:         sum,
	}
}

// Progression errors

type NoPointsAvailableError struct {
	*DomainError
	Kind string
}

func NewNoPointsAvailableError(kind string) *NoPointsAvailableError {
	return &NoPointsAvailableError{
		DomainError: NewDomainError(fmt.Sprintf("no %s points available", kind)),
		Kind:        kind,
	}
}

type WorkCapacityExhaustedError struct {
	*DomainError
	Capacity int
}

func NewWorkCapacityExhaustedError(capacity int) *WorkCapacityExhaustedError {
	return &WorkCapacityExhaustedError{
		DomainError: NewDomainError(fmt.Sprintf("daily work capacity of %d sessions exhausted", capacity)),
		Capacity:    capacity,
	}
}

type FeatureLockedError struct {
	*DomainError
	Feature       string
	RequiredLevel int
}

func NewFeatureLockedError(feature string, requiredLevel int) *FeatureLockedError {
	return &FeatureLockedError{
		DomainError:   NewDomainError(fmt.Sprintf("%s unlocks at level %d", feature, requiredLevel)),
		Feature:       feature,
		RequiredLevel: requiredLevel,
	}
}

// Lookup errors

type NotFoundError struct {
	*DomainError
	Entity string
	ID     string
}

func NewNotFoundError(entity, id string) *NotFoundError {
	return &NotFoundError{
		DomainError: NewDomainError(fmt.Sprintf("%s not found: %s", entity, id)),
		Entity:      entity,
		ID:          id,
	}
}

// Validation error

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
