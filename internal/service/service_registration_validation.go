package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-auth-gate/internal/app"
	"github.com/MKhiriev/go-auth-gate/internal/metrics"
	"github.com/MKhiriev/go-auth-gate/internal/validators"
	"github.com/MKhiriev/go-auth-gate/models"
)

// RegistrationServiceWrapper decorates a RegistrationService, e.g. with
// input normalisation and validation.
type RegistrationServiceWrapper interface {
	Wrap(RegistrationService) RegistrationService
}

// RegistrationValidationService trims and validates the signup form before
// the wrapped service touches the store.
type RegistrationValidationService struct {
	inner     RegistrationService
	validator validators.Validator
}

func NewRegistrationValidationService(validator validators.Validator) RegistrationServiceWrapper {
	return &RegistrationValidationService{
		validator: validator,
	}
}

func (v *RegistrationValidationService) Register(ctx context.Context, form models.RegistrationForm) (models.User, error) {
	// passwords are taken verbatim
	form.Username = strings.TrimSpace(form.Username)
	form.Email = strings.TrimSpace(form.Email)

	if err := v.validator.Validate(ctx, form); err != nil {
		metrics.RegistrationsTotal.WithLabelValues(metrics.OutcomeValidation).Inc()
		return models.User{}, validationFormError(err)
	}

	return v.inner.Register(ctx, form)
}

func (v *RegistrationValidationService) Wrap(inner RegistrationService) RegistrationService {
	v.inner = inner
	return v
}

// validationFormError converts a validator error into the user-facing form
// error of the first violated rule.
func validationFormError(err error) *FormError {
	switch {
	case errors.Is(err, validators.ErrUsernameTooShort):
		return newFormError(ErrValidation, FieldUsername, app.MsgUsernameTooShort, err)
	case errors.Is(err, validators.ErrUsernameInvalidChars):
		return newFormError(ErrValidation, FieldUsername, app.MsgUsernameInvalidChars, err)
	case errors.Is(err, validators.ErrInvalidEmail):
		return newFormError(ErrValidation, FieldEmail, app.MsgInvalidEmail, err)
	case errors.Is(err, validators.ErrPasswordTooShort):
		return newFormError(ErrValidation, FieldPassword, app.MsgPasswordTooShort, err)
	case errors.Is(err, validators.ErrPasswordTooLong):
		return newFormError(ErrValidation, FieldPassword, app.MsgPasswordTooLong, err)
	case errors.Is(err, validators.ErrPasswordsMismatch):
		return newFormError(ErrValidation, FieldConfirmation, app.MsgPasswordsMismatch, err)
	case errors.Is(err, validators.ErrMissingCredentials):
		return newFormError(ErrValidation, FieldNone, app.MsgMissingCredentials, err)
	default:
		return newFormError(ErrStorage, FieldStorage, app.MsgRegistrationFailed, err)
	}
}
