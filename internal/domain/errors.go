package domain

import "errors"

// Code is a machine-readable error category.
type Code string

const (
	CodeInvalidParameter Code = "invalid_parameter"
	CodeInvalidDigit     Code = "invalid_digit"
	CodeNotConfigured    Code = "not_configured"
)

// Error is a coded domain error.
type Error struct {
	Code    Code
	Message string
	Fields  []FieldError
	Cause   error
}

func (e *Error) Error() string { return e.Message }

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Cause }

// Is matches any *Error with the same code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// Sentinels for errors.Is checks.
var (
	ErrInvalidParameter = &Error{Code: CodeInvalidParameter, Message: "invalid parameter"}
	ErrInvalidDigit     = &Error{Code: CodeInvalidDigit, Message: "digit must be between 0 and 9"}
	ErrNotConfigured    = &Error{Code: CodeNotConfigured, Message: "usecase dependency not configured"}
)

// InvalidParameters builds an invalid_parameter error listing the offending fields.
func InvalidParameters(fields []FieldError) *Error {
	return &Error{Code: CodeInvalidParameter, Message: "invalid parameter", Fields: fields}
}
