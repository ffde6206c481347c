// Package booking holds the pure booking rule engine: candidate validation,
// status derivation and recurring-date computation. Nothing in here touches
// storage; the service layer loads the data and calls in.
package booking

import "fmt"

// Validation error codes, stable for API clients.
const (
	CodeMissingTerm            = "missing_term"
	CodeSpecializationMismatch = "specialization_mismatch"
	CodeOutsideAvailability    = "outside_availability"
	CodeTimeConflict           = "time_conflict"
	CodeInvalidWeekday         = "invalid_weekday"
)

// ValidationError is a field-attributed rule violation. All validation
// failures are deterministic and locally recoverable; callers surface them
// as field-level messages.
type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var (
	// ErrMissingTerm - the booking has no term set.
	ErrMissingTerm = &ValidationError{
		Field:   "term",
		Code:    CodeMissingTerm,
		Message: "a term must be selected",
	}

	// ErrSpecializationMismatch - the assigned tutor does not offer the
	// requested specialization.
	ErrSpecializationMismatch = &ValidationError{
		Field:   "specialization",
		Code:    CodeSpecializationMismatch,
		Message: "the assigned tutor does not offer this specialization",
	}

	// ErrOutsideAvailability - no availability window of the assigned tutor
	// fully contains the booked time.
	ErrOutsideAvailability = &ValidationError{
		Field:   "start_time",
		Code:    CodeOutsideAvailability,
		Message: "the booking falls outside the tutor's availability",
	}

	// ErrTimeConflict - another accepted booking already occupies the slot.
	ErrTimeConflict = &ValidationError{
		Field:   "start_time",
		Code:    CodeTimeConflict,
		Message: "this tutor is already booked at the selected time",
	}

	// ErrInvalidWeekday - the day-of-week value is not one of the seven day
	// names.
	ErrInvalidWeekday = &ValidationError{
		Field:   "day_of_week",
		Code:    CodeInvalidWeekday,
		Message: "invalid day of week",
	}
)
