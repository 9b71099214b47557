package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")

	ErrInvalidRequest = errors.New("invalid request body")
	ErrUnauthorized   = errors.New("authentication required")
	ErrRateLimited    = errors.New("too many requests")

	ErrDenied               = errors.New("operation denied")
	ErrNotEligible          = errors.New("actor is not eligible for this operation")
	ErrProfileExists        = errors.New("profile already exists")
	ErrUnavailable          = errors.New("housing is not available")
	ErrJobClosed            = errors.New("job is not accepting applications")
	ErrDuplicateApplication = errors.New("application already exists")
	ErrInvalidTransition    = errors.New("invalid application status transition")
	ErrCapacityExceeded     = errors.New("housing capacity exceeded")
)

// DeniedError is returned by the authorization gate. It carries the operation
// and the rule that rejected it.
type DeniedError struct {
	Operation string
	Reason    string
}

func (e *DeniedError) Error() string {
	return fmt.Sprintf("operation '%s' denied: %s", e.Operation, e.Reason)
}
func (e *DeniedError) Is(target error) bool { return target == ErrDenied }

type NotEligibleError struct {
	Operation string
	Reason    string
}

func (e *NotEligibleError) Error() string {
	return fmt.Sprintf("not eligible for '%s': %s", e.Operation, e.Reason)
}
func (e *NotEligibleError) Is(target error) bool { return target == ErrNotEligible }

type DuplicateApplicationError struct {
	Kind      string
	RefugeeID int64
	TargetID  int64
}

func (e *DuplicateApplicationError) Error() string {
	return fmt.Sprintf("refugee %d already applied to %s %d", e.RefugeeID, e.Kind, e.TargetID)
}
func (e *DuplicateApplicationError) Is(target error) bool {
	return target == ErrDuplicateApplication || target == ErrAlreadyExists
}

type InvalidTransitionError struct {
	Kind string
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s application cannot move from '%s' to '%s'", e.Kind, e.From, e.To)
}
func (e *InvalidTransitionError) Is(target error) bool { return target == ErrInvalidTransition }

type CapacityExceededError struct {
	HousingID int64
	Capacity  int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("housing %d is at full capacity (%d)", e.HousingID, e.Capacity)
}
func (e *CapacityExceededError) Is(target error) bool { return target == ErrCapacityExceeded }

type UsernameTakenError struct{ Username string }

func (e *UsernameTakenError) Error() string {
	return fmt.Sprintf("username '%s' is already taken", e.Username)
}
func (e *UsernameTakenError) Is(target error) bool { return target == ErrAlreadyExists }
