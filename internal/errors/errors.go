package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a stable identifier for a failure class of the chart core.
type Kind string

const (
	// InvalidBirthData indicates coordinates, date, time or zone failed validation.
	InvalidBirthData Kind = "INVALID_BIRTH_DATA"
	// InvalidTemporalInput indicates a zone or local time that cannot be resolved.
	InvalidTemporalInput Kind = "INVALID_TEMPORAL_INPUT"
	// EphemerisUnavailable indicates the position source could not answer.
	EphemerisUnavailable Kind = "EPHEMERIS_UNAVAILABLE"
	// InvalidDashaSeed indicates a nakshatra index or lord without a period.
	InvalidDashaSeed Kind = "INVALID_DASHA_SEED"
	// AscendantUndefined indicates the ascendant has no finite solution.
	AscendantUndefined Kind = "ASCENDANT_UNDEFINED"
)

// Sentinels usable with errors.Is.
var (
	ErrInvalidBirthData     = &Error{Kind: InvalidBirthData}
	ErrInvalidTemporalInput = &Error{Kind: InvalidTemporalInput}
	ErrEphemerisUnavailable = &Error{Kind: EphemerisUnavailable}
	ErrInvalidDashaSeed     = &Error{Kind: InvalidDashaSeed}
	ErrAscendantUndefined   = &Error{Kind: AscendantUndefined}
)

// Error is the single error type returned by the chart core.
type Error struct {
	Kind    Kind     `json:"kind"`
	Op      string   `json:"op,omitempty"`
	Message string   `json:"message,omitempty"`
	Details []string `json:"details,omitempty"`
	cause   error
}

// New creates an Error of the given kind.
func New(kind Kind, op, message string) *Error {
	return &Error{Kind: kind, Op: op, Message: message}
}

// Wrap creates an Error of the given kind around an underlying cause.
func Wrap(kind Kind, op, message string, cause error) *Error {
	return &Error{Kind: kind, Op: op, Message: message, cause: cause}
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("[%s]", e.Kind)
	if e.Op != "" {
		msg += " " + e.Op
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	for _, d := range e.Details {
		msg += "; " + d
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports a match on Kind, so sentinels compare equal to any error of their kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// WithDetails appends human-readable details and returns the same error.
func (e *Error) WithDetails(details ...string) *Error {
	e.Details = append(e.Details, details...)
	return e
}

// KindOf extracts the Kind from err, or "" if err is not a core error.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}
