package timetable

import "fmt"

// Error is a typed engine error. Validation problems surface as these
// before any generation begins; the allocator itself never errors.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewError creates a new Error instance.
func NewError(code string, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError attaches context to an existing error.
func WrapError(err error, code string, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

const (
	// CodeCatalogueInvalid marks malformed or inconsistent catalogue input.
	CodeCatalogueInvalid = "CATALOGUE_INVALID"
)
