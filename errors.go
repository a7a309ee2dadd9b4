package untable

import "github.com/mrjoshuak/untable/internal/errs"

// Errors returned by the extractors. Match them with errors.Is.
var (
	ErrMissingInput      = errs.ErrMissingInput
	ErrInvalidArgument   = errs.ErrInvalidArgument
	ErrTableNotFound     = errs.ErrTableNotFound
	ErrLabelRowNotFound  = errs.ErrLabelRowNotFound
	ErrRowLengthMismatch = errs.ErrRowLengthMismatch
	ErrDocumentTooLarge  = errs.ErrDocumentTooLarge
)

// RowLengthError reports a data row whose cell count differs from the
// label row. It matches ErrRowLengthMismatch.
type RowLengthError = errs.RowLengthError

// ErrorType is the category attached to every error returned by this package.
type ErrorType = errs.ErrorType

// Error categories.
const (
	ParseError      = errs.ParseError
	LocateError     = errs.LocateError
	ExtractionError = errs.ExtractionError
	ValidationError = errs.ValidationError
)

// IsErrorType reports whether err, or any error it wraps, has the given category.
func IsErrorType(err error, errorType ErrorType) bool {
	return errs.IsErrorType(err, errorType)
}
