// Package errors provides the structured error type shared by every drill package.
// Errors carry a stable code so callers can branch on them with errors.Is and the CLI
// can render them either for humans or as JSON.
package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a unique error code
type ErrorCode string

// ErrorCategory groups related codes
type ErrorCategory string

const (
	// CategoryArgument covers every rejected input (ARG001-099)
	CategoryArgument ErrorCategory = "argument"
)

const (
	// ErrCodeInvalidArgument indicates an input outside the accepted domain
	ErrCodeInvalidArgument ErrorCode = "ARG001"
	// ErrCodeUnparsableArgument indicates a textual argument that could not be decoded
	ErrCodeUnparsableArgument ErrorCode = "ARG002"
	// ErrCodeEmptyInput indicates a sequence that must not be empty
	ErrCodeEmptyInput ErrorCode = "ARG003"
)

// ErrInvalidArgument is the sentinel matched by every ARG error through errors.Is.
var ErrInvalidArgument = &Error{
	Code:     ErrCodeInvalidArgument,
	Category: CategoryArgument,
	Message:  "invalid argument",
}

// Error is a coded drill error
type Error struct {
	// Code is the unique error code (e.g., "ARG001")
	Code ErrorCode `json:"code"`
	// Category is the error category
	Category ErrorCategory `json:"category"`
	// Op names the operation that rejected the input (e.g., "numeric.Divisors")
	Op string `json:"op,omitempty"`
	// Message is the primary error message
	Message string `json:"message"`
	// Value is a printable rendering of the offending input (optional)
	Value string `json:"value,omitempty"`

	cause error
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := e.Message
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

// Unwrap returns the wrapped cause, if any
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is an *Error in the same category. The ARG sentinel therefore
// matches parse failures and empty-input errors too.
func (e *Error) Is(target error) bool {
	var t *Error
	if !stderrors.As(target, &t) {
		return false
	}
	if t == ErrInvalidArgument {
		return e.Category == CategoryArgument
	}
	return e.Code == t.Code
}

// ToJSON returns the error as an indented JSON document
func (e *Error) ToJSON() (string, error) {
	bytes, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// WithValue records the offending input
func (e *Error) WithValue(v any) *Error {
	e.Value = fmt.Sprint(v)
	return e
}

// InvalidArgument creates an ARG001 error for op
func InvalidArgument(op, format string, args ...any) *Error {
	return newError(ErrCodeInvalidArgument, op, fmt.Sprintf(format, args...), nil)
}

// Unparsable creates an ARG002 error wrapping the decoder failure
func Unparsable(op, input string, cause error) *Error {
	return newError(ErrCodeUnparsableArgument, op, fmt.Sprintf("cannot parse %q", input), cause).WithValue(input)
}

// EmptyInput creates an ARG003 error
func EmptyInput(op string) *Error {
	return newError(ErrCodeEmptyInput, op, "input must not be empty", nil)
}

func newError(code ErrorCode, op, message string, cause error) *Error {
	return &Error{
		Code:     code,
		Category: CategoryArgument,
		Op:       op,
		Message:  message,
		cause:    cause,
	}
}

// CodeOf extracts the code from err, or "" when err is not a drill error
func CodeOf(err error) ErrorCode {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return ""
}
