package booking

import (
	"errors"
	"fmt"
)

// Workflow error codes, mapped to HTTP statuses at the handler layer.
const (
	CodeForbidden         = "forbidden"
	CodeNotFound          = "notFound"
	CodeInvalidInput      = "invalidInput"
	CodeInvalidTransition = "invalidTransition"
)

// WorkflowError is a booking workflow failure with a user-facing message.
type WorkflowError struct {
	Code    string
	Message string
}

func (e *WorkflowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewForbiddenError(msg string) error {
	return &WorkflowError{Code: CodeForbidden, Message: msg}
}

func NewNotFoundError(msg string) error {
	return &WorkflowError{Code: CodeNotFound, Message: msg}
}

func NewInvalidInputError(msg string) error {
	return &WorkflowError{Code: CodeInvalidInput, Message: msg}
}

func NewInvalidTransitionError(msg string) error {
	return &WorkflowError{Code: CodeInvalidTransition, Message: msg}
}

// ErrorCode returns the workflow error code carried by err, or "" when err is
// not a WorkflowError.
func ErrorCode(err error) string {
	var wfErr *WorkflowError
	if errors.As(err, &wfErr) {
		return wfErr.Code
	}
	return ""
}

// UserMessage returns the user-facing message for a WorkflowError, or "" for
// any other error.
func UserMessage(err error) string {
	var wfErr *WorkflowError
	if errors.As(err, &wfErr) {
		return wfErr.Message
	}
	return ""
}
