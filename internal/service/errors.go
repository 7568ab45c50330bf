package service

import (
	"errors"
	"fmt"
)

// Kind classifies an expected business failure. Anything a service returns
// without a Kind is an unexpected I/O or programming error.
type Kind int

const (
	// KindValidation flags a missing, malformed or out-of-range field.
	KindValidation Kind = iota + 1
	// KindDuplicate flags a uniqueness violation.
	KindDuplicate
	// KindNotFound flags a referenced identifier that does not exist.
	KindNotFound
	// KindConflict flags a business conflict: schedule overlap, course
	// full, enrollment window closed.
	KindConflict
	// KindState flags an invalid state transition, such as reviewing an
	// already-decided leave request.
	KindState
	// KindPersistence flags a backing-file read or write failure.
	KindPersistence
)

// String returns the kind's wire name.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindDuplicate:
		return "duplicate"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindState:
		return "state"
	case KindPersistence:
		return "persistence"
	default:
		return "unknown"
	}
}

// Error is the single failure result every service method returns for
// expected business failures. Message is written for direct display: no
// stack traces, no internal identifiers.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func newError(k Kind, format string, args ...any) *Error {
	return &Error{Kind: k, Message: fmt.Sprintf(format, args...)}
}

// Validationf builds a KindValidation error.
func Validationf(format string, args ...any) *Error {
	return newError(KindValidation, format, args...)
}

// Duplicatef builds a KindDuplicate error.
func Duplicatef(format string, args ...any) *Error {
	return newError(KindDuplicate, format, args...)
}

// NotFoundf builds a KindNotFound error.
func NotFoundf(format string, args ...any) *Error {
	return newError(KindNotFound, format, args...)
}

// Conflictf builds a KindConflict error.
func Conflictf(format string, args ...any) *Error {
	return newError(KindConflict, format, args...)
}

// Statef builds a KindState error.
func Statef(format string, args ...any) *Error {
	return newError(KindState, format, args...)
}

// IsKind reports whether err is a service error of the given kind.
func IsKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

// KindOf returns the kind of a service error, or 0 for any other error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
