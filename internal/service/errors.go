package service

import (
	"errors"
	"strings"
)

// Error kinds. Every error returned by a service is a *FormError whose Kind
// is one of these, so callers can branch with errors.Is.
var (
	ErrValidation         = errors.New("validation failed")
	ErrConflict           = errors.New("account already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrStorage            = errors.New("storage failure")
)

// Field tags which form input an error belongs to. The presentation layer
// uses it to highlight inputs instead of inspecting messages.
type Field int

const (
	FieldNone Field = iota
	FieldUsername
	FieldEmail
	FieldPassword
	FieldConfirmation
	FieldConflict
	FieldStorage
)

var fieldNames = [...]string{
	FieldNone:         "none",
	FieldUsername:     "username",
	FieldEmail:        "email",
	FieldPassword:     "password",
	FieldConfirmation: "confirmation",
	FieldConflict:     "conflict",
	FieldStorage:      "storage",
}

func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return "unknown"
	}
	return fieldNames[f]
}

// FormError is the structured result of a failed operation.
//
// Message is safe to show to the user. Cause holds the internal error, if
// any, and must only be logged.
type FormError struct {
	Kind    error
	Field   Field
	Message string

	// Conflicts lists the fields found taken when Kind is ErrConflict.
	// It is empty when the store could not tell which constraint fired.
	Conflicts []Field

	Cause error
}

func (e *FormError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	b.WriteString(" (")
	b.WriteString(e.Field.String())
	b.WriteString("): ")
	b.WriteString(e.Message)
	return b.String()
}

func (e *FormError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// Has reports whether f is the error's field or one of its conflicts.
func (e *FormError) Has(f Field) bool {
	if e.Field == f {
		return true
	}
	for _, c := range e.Conflicts {
		if c == f {
			return true
		}
	}
	return false
}

// AsFormError extracts the *FormError from err's chain.
func AsFormError(err error) (*FormError, bool) {
	var fe *FormError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

func newFormError(kind error, field Field, message string, cause error) *FormError {
	return &FormError{Kind: kind, Field: field, Message: message, Cause: cause}
}
