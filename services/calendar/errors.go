package calendar

import (
	"errors"
	"fmt"
)

var (
	ErrSessionNotFound   = errors.New("calendar session not found")
	ErrScheduleNotFound  = errors.New("schedule not found")
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidMode       = errors.New("invalid view mode")
	ErrInvalidDirection  = errors.New("invalid navigation direction")
	ErrUnknownTeam       = errors.New("team is not in the filterable set")
	ErrUnknownContractor = errors.New("contractor is not in the filterable set")
)

// ValidationError rejects a schedule payload.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}
