package engine

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error code.
type Code string

const (
	// Structural preconditions, checked before any search step runs
	ErrCodeInvalidBoard Code = "INVALID_BOARD"
	ErrCodeInvalidBlock Code = "INVALID_BLOCK"
	ErrCodeAreaMismatch Code = "AREA_MISMATCH"

	// Cooperative limits tripped during the search
	ErrCodeBudgetExceeded Code = "BUDGET_EXCEEDED"
	ErrCodeCanceled       Code = "CANCELED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates an Error with the given code and formatted message.
func NewError(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapError creates an Error wrapping an existing error.
func WrapError(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// IsCode reports whether err has the given error code anywhere in its chain.
func IsCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// IsPrecondition reports whether err is a structural precondition failure.
func IsPrecondition(err error) bool {
	return IsCode(err, ErrCodeInvalidBoard) ||
		IsCode(err, ErrCodeInvalidBlock) ||
		IsCode(err, ErrCodeAreaMismatch)
}

// logicViolation aborts on a broken commit/undo or consume/release contract.
// These indicate a bug in the search, never a property of the puzzle.
func logicViolation(format string, args ...any) {
	panic("engine: logic violation: " + fmt.Sprintf(format, args...))
}
