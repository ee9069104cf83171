package apperror

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation       = errors.New("validation error")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrWrite            = errors.New("write error")
)

// FieldError names one offending field of a rejected record.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// AppError carries one of the sentinel kinds above plus caller-facing detail.
type AppError struct {
	Err     error        // kind, matched with errors.Is
	Message string       // human readable
	Fields  []FieldError // set for validation failures
	Cause   error        // underlying driver error, if any
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *AppError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

func Validation(fields ...FieldError) *AppError {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Field)
	}
	return &AppError{
		Err:     ErrValidation,
		Message: "invalid fields: " + strings.Join(names, ", "),
		Fields:  fields,
	}
}

// InvalidField is a shorthand for a single-field validation failure.
func InvalidField(field, rule string) *AppError {
	return Validation(FieldError{Field: field, Rule: rule})
}

func StoreUnavailable(op string, cause error) *AppError {
	return &AppError{
		Err:     ErrStoreUnavailable,
		Message: op + ": store unavailable",
		Cause:   cause,
	}
}

func Write(collection string, cause error) *AppError {
	return &AppError{
		Err:     ErrWrite,
		Message: fmt.Sprintf("insert into %s failed", collection),
		Cause:   cause,
	}
}

// Kind returns a machine readable name for err's kind.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return "validation_error"
	case errors.Is(err, ErrStoreUnavailable):
		return "store_unavailable"
	case errors.Is(err, ErrWrite):
		return "write_error"
	}
	return "internal_error"
}
