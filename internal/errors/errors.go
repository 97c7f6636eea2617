package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for categorizing errors
const (
	ErrIndex     = "INDEX"     // strip or stop index out of bounds
	ErrInvariant = "INVARIANT" // edit would break the two-stop minimum
	ErrColor     = "COLOR"     // color rejected by the strict policy
	ErrOp        = "OP"        // malformed textual edit
	ErrConfig    = "CONFIG"
	ErrRender    = "RENDER"
	ErrServe     = "SERVE"
)

// Error represents a structured error with code, message, suggestion, and optional cause.
// Formatted for the terminal as:
//
//	✗ <What failed>
//
//	  <Why it failed - technical details>
//
//	  <How to fix it - actionable steps>
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New creates a new structured error with the given code, message, and suggestion.
func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Wrap wraps an existing error with a message, defaulting to ErrRender code.
func Wrap(err error, message string) *Error {
	return &Error{
		Code:    ErrRender,
		Message: message,
		Cause:   err,
	}
}

// WrapWithCode wraps an existing error with a specific code, message, and suggestion.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	// First line: failure symbol + main message
	b.WriteString(fmt.Sprintf("✗ %s\n", e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Cause.Error()))
	}

	if e.Suggestion != "" {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Suggestion))
	}

	return b.String()
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode checks if an error is a structured Error with the given code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var lgErr *Error
	if errors.As(err, &lgErr) {
		return lgErr.Code == code
	}
	return false
}

// CodeOf returns the code of the outermost structured Error in the chain,
// or an empty string when there is none.
func CodeOf(err error) string {
	var lgErr *Error
	if errors.As(err, &lgErr) {
		return lgErr.Code
	}
	return ""
}

// MessageOf returns the Message of the outermost structured Error, falling
// back to err.Error() for plain errors.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	var lgErr *Error
	if errors.As(err, &lgErr) {
		return lgErr.Message
	}
	return err.Error()
}
