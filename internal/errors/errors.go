// Package errors provides the application error taxonomy for the assistant.
package errors

import (
	"errors"
	"strings"
)

// ============================================================
// Error Categories
// ============================================================

// Category defines the type of error for handling decisions.
type Category int

const (
	// CategoryUser errors are due to user input (validation, unknown section)
	CategoryUser Category = iota

	// CategoryLookup errors come from the company-data lookup
	CategoryLookup

	// CategoryGeneration errors come from the text-generation service
	CategoryGeneration

	// CategoryState errors are raised when an operation needs state that
	// does not exist yet (e.g. updating a plan before one is generated)
	CategoryState
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryUser:
		return "user"
	case CategoryLookup:
		return "lookup"
	case CategoryGeneration:
		return "generation"
	case CategoryState:
		return "state"
	default:
		return "unknown"
	}
}

// ============================================================
// Error Codes
// ============================================================

const (
	CodeInvalidCompanyName = "invalid_company_name"
	CodeUnknownSection     = "unknown_section"
	CodeNoPlan             = "no_plan"
	CodeLookupFailed       = "lookup_failed"
	CodeGenerationFailed   = "generation_failed"
	CodeEmptyInput         = "empty_input"
)

// ============================================================
// AppError - Main Error Type
// ============================================================

// AppError is the main error type for all assistant errors. Every AppError
// carries a user-facing message; no error path is allowed to crash the
// conversation, so handlers convert these into in-band reply text.
type AppError struct {
	// Code is a unique error code for programmatic handling
	Code string

	// Message is a user-friendly error message
	Message string

	// Category determines how the error should be handled
	Category Category

	// Inner is the underlying error
	Inner error
}

// Error returns the error message.
func (e *AppError) Error() string {
	var sb strings.Builder

	if e.Code != "" {
		sb.WriteString("[")
		sb.WriteString(e.Code)
		sb.WriteString("] ")
	}

	sb.WriteString(e.Message)

	if e.Inner != nil {
		innerMsg := e.Inner.Error()
		if innerMsg != "" && innerMsg != e.Message {
			sb.WriteString(": ")
			sb.WriteString(innerMsg)
		}
	}

	return sb.String()
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Inner
}

// New creates a new AppError.
func New(code, message string, category Category) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Category: category,
	}
}

// Wrap wraps an existing error with a code and user-facing message.
func Wrap(err error, code, message string, category Category) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:     code,
		Message:  message,
		Category: category,
		Inner:    err,
	}
}

// CodeOf extracts the error code, or "" for non-application errors.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// UserMessage returns the user-facing message for an error. For plain errors
// the raw error text is returned.
func UserMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
