package validators

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/go-playground/validator/v10"
)

// Form field names as submitted by the HTML forms.
const (
	FieldUsername     = "username"
	FieldEmail        = "email"
	FieldPassword     = "password"
	FieldConfirmation = "confirm_password"
)

// maxPasswordBytes is the longest input bcrypt digests.
const maxPasswordBytes = 72

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// FormValidator validates signup and login submissions.
type FormValidator struct {
	validate *validator.Validate
}

// NewFormValidator returns a FormValidator with the "username" and
// "bcryptmax" tags registered.
func NewFormValidator() *FormValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// registration only fails on an empty tag name or nil func
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})
	// bytes, not runes
	_ = v.RegisterValidation("bcryptmax", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= maxPasswordBytes
	})
	return &FormValidator{validate: v}
}

// Validate accepts models.RegistrationForm and models.Credentials, by value
// or by pointer.
func (v *FormValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.RegistrationForm:
		return v.validateRegistration(value)
	case *models.RegistrationForm:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateRegistration(*value)
	case models.Credentials:
		return validateCredentials(value)
	case *models.Credentials:
		if value == nil {
			return ErrUnsupportedType
		}
		return validateCredentials(*value)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *FormValidator) validateRegistration(form models.RegistrationForm) error {
	err := v.validate.Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	// struct fields are declared in form order, so the first entry is the
	// first violated rule
	return toFieldError(fieldErrs[0])
}

func toFieldError(fe validator.FieldError) *FieldError {
	switch fe.StructField() {
	case "Username":
		if fe.Tag() == "username" {
			return &FieldError{Field: FieldUsername, Err: ErrUsernameInvalidChars}
		}
		return &FieldError{Field: FieldUsername, Err: ErrUsernameTooShort}
	case "Email":
		return &FieldError{Field: FieldEmail, Err: ErrInvalidEmail}
	case "Password":
		if fe.Tag() == "bcryptmax" {
			return &FieldError{Field: FieldPassword, Err: ErrPasswordTooLong}
		}
		return &FieldError{Field: FieldPassword, Err: ErrPasswordTooShort}
	default:
		return &FieldError{Field: FieldConfirmation, Err: ErrPasswordsMismatch}
	}
}

func validateCredentials(c models.Credentials) error {
	if c.Username == "" || c.Password == "" {
		return &FieldError{Field: FieldUsername, Err: ErrMissingCredentials}
	}
	return nil
}
