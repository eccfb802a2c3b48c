package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrUsernameTooShort     = errors.New("username is too short")
	ErrUsernameInvalidChars = errors.New("username contains invalid characters")
	ErrInvalidEmail         = errors.New("invalid email address")
	ErrPasswordTooShort     = errors.New("password is too short")
	ErrPasswordTooLong      = errors.New("password is too long")
	ErrPasswordsMismatch    = errors.New("passwords do not match")
	ErrMissingCredentials   = errors.New("username and password are required")
)

// FieldError reports the first rule an input violated together with the
// form field it belongs to.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
