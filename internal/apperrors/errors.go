package apperrors

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindAuthorizationDenied Kind = "AuthorizationDenied"
	KindIllegalTransition   Kind = "IllegalTransition"
	KindRateUnresolved      Kind = "RateUnresolved"
	KindValidationFailed    Kind = "ValidationFailed"
	KindConflictingUpdate   Kind = "ConflictingUpdate"
	KindLockedForEditing    Kind = "LockedForEditing"
	KindNotFound            Kind = "NotFound"
)

// Error is a business rejection. A zero Reason marks the sentinel of its kind,
// so errors.Is(err, ErrIllegalTransition) matches every IllegalTransition.
type Error struct {
	Kind   Kind
	Reason string
}

func (e *Error) Error() string {
	if e.Reason == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Reason == "" || t.Reason == e.Reason)
}

var (
	ErrAuthorizationDenied = &Error{Kind: KindAuthorizationDenied}
	ErrIllegalTransition   = &Error{Kind: KindIllegalTransition}
	ErrRateUnresolved      = &Error{Kind: KindRateUnresolved}
	ErrValidationFailed    = &Error{Kind: KindValidationFailed}
	ErrConflictingUpdate   = &Error{Kind: KindConflictingUpdate}
	ErrLockedForEditing    = &Error{Kind: KindLockedForEditing}
	ErrNotFound            = &Error{Kind: KindNotFound}
)

func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

func Denied(format string, args ...any) *Error {
	return New(KindAuthorizationDenied, format, args...)
}

func Illegal(format string, args ...any) *Error {
	return New(KindIllegalTransition, format, args...)
}

func Invalid(format string, args ...any) *Error {
	return New(KindValidationFailed, format, args...)
}

func Unresolved(format string, args ...any) *Error {
	return New(KindRateUnresolved, format, args...)
}

func Conflict(format string, args ...any) *Error {
	return New(KindConflictingUpdate, format, args...)
}

func Locked(format string, args ...any) *Error {
	return New(KindLockedForEditing, format, args...)
}

func NotFound(format string, args ...any) *Error {
	return New(KindNotFound, format, args...)
}

// KindOf returns the kind of the first *Error in err's chain, or "" for infrastructure errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Reason returns the human-readable reason of a business error.
func Reason(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Reason == "" {
			return string(e.Kind)
		}
		return e.Reason
	}
	return err.Error()
}
