// Package errs defines the error values shared by the untable packages.
package errs

import (
	"errors"
	"fmt"
)

// ErrorType defines the category of an error
type ErrorType string

// Error types
const (
	ParseError      ErrorType = "parse"
	LocateError     ErrorType = "locate"
	ExtractionError ErrorType = "extraction"
	ValidationError ErrorType = "validation"
)

// Common errors that can be used throughout the package
var (
	ErrMissingInput      = errors.New("either html or a parsed tree is required")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrTableNotFound     = errors.New("no table element found")
	ErrLabelRowNotFound  = errors.New("label row not found")
	ErrRowLengthMismatch = errors.New("row length does not match label count")
	ErrDocumentTooLarge  = errors.New("document too large")
)

// Error carries the category and origin of a failure.
type Error struct {
	Type    ErrorType
	Func    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("[%s:%s] %v", e.Type, e.Func, e.Err)
	}
	return fmt.Sprintf("[%s:%s] %s: %v", e.Type, e.Func, e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// WrapError wraps an error with context information
func WrapError(err error, errorType ErrorType, funcName, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Type: errorType, Func: funcName, Message: message, Err: err}
}

// WrapParseError wraps a parsing error
func WrapParseError(err error, funcName, message string) error {
	return WrapError(err, ParseError, funcName, message)
}

// WrapLocateError wraps an error raised while looking for table parts
func WrapLocateError(err error, funcName, message string) error {
	return WrapError(err, LocateError, funcName, message)
}

// WrapExtractionError wraps an extraction error
func WrapExtractionError(err error, funcName, message string) error {
	return WrapError(err, ExtractionError, funcName, message)
}

// WrapValidationError wraps a validation error
func WrapValidationError(err error, funcName, message string) error {
	return WrapError(err, ValidationError, funcName, message)
}

// IsErrorType checks if any error in the chain is of a specific type
func IsErrorType(err error, errorType ErrorType) bool {
	var e *Error
	for err != nil {
		if !errors.As(err, &e) {
			return false
		}
		if e.Type == errorType {
			return true
		}
		err = e.Err
	}
	return false
}

// RowLengthError reports a data row whose cell count differs from the label row.
type RowLengthError struct {
	Row  int // index among the final rows of the table
	Want int
	Got  int
}

func (e *RowLengthError) Error() string {
	return fmt.Sprintf("row %d has %d cells, want %d", e.Row, e.Got, e.Want)
}

// Is lets errors.Is match ErrRowLengthMismatch.
func (e *RowLengthError) Is(target error) bool {
	return target == ErrRowLengthMismatch
}
