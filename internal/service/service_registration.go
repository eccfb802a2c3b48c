package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-auth-gate/internal/app"
	"github.com/MKhiriev/go-auth-gate/internal/crypto"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/metrics"
	"github.com/MKhiriev/go-auth-gate/internal/store"
	"github.com/MKhiriev/go-auth-gate/models"
)

// registrationService persists accounts whose form already passed
// validation. It is normally wrapped by registrationValidationService.
type registrationService struct {
	users      store.UserRepository
	transactor store.Transactor
	hasher     crypto.PasswordHasher
	logger     *logger.Logger
}

func NewRegistrationService(users store.UserRepository, transactor store.Transactor, hasher crypto.PasswordHasher, logger *logger.Logger) RegistrationService {
	return &registrationService{
		users:      users,
		transactor: transactor,
		hasher:     hasher,
		logger:     logger,
	}
}

// Register runs both existence checks and the insert in one transaction.
// The unique constraints still decide concurrent signups: a violation at
// insert time is reported as a conflict, never as a storage failure.
func (s *registrationService) Register(ctx context.Context, form models.RegistrationForm) (models.User, error) {
	log := logger.FromContext(ctx)

	var (
		created      models.User
		passwordHash string
	)

	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		usernameTaken, err := s.users.ExistsByUsername(ctx, form.Username)
		if err != nil {
			return err
		}
		emailTaken, err := s.users.ExistsByEmail(ctx, form.Email)
		if err != nil {
			return err
		}
		if conflict := preCheckConflict(usernameTaken, emailTaken); conflict != nil {
			return conflict
		}

		// keep the digest across transaction retries
		if passwordHash == "" {
			if passwordHash, err = s.hasher.Hash(form.Password); err != nil {
				return err
			}
		}

		created, err = s.users.CreateUser(ctx, models.User{
			Username:     form.Username,
			Email:        form.Email,
			PasswordHash: passwordHash,
		})
		return err
	})
	if err != nil {
		fe := s.registrationError(err)
		if errors.Is(fe, ErrStorage) {
			log.Err(err).Str("func", "*registrationService.Register").Msg("registration failed")
		} else {
			log.Info().Str("func", "*registrationService.Register").Stringer("field", fe.Field).Msg("registration rejected")
		}
		return models.User{}, fe
	}

	metrics.RegistrationsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	log.Info().Str("func", "*registrationService.Register").Int64("user_id", created.UserID).Msg("user registered")

	return created, nil
}

func preCheckConflict(usernameTaken, emailTaken bool) *FormError {
	switch {
	case usernameTaken && emailTaken:
		fe := newFormError(ErrConflict, FieldConflict, app.MsgUsernameAndEmailTaken, nil)
		fe.Conflicts = []Field{FieldUsername, FieldEmail}
		return fe
	case usernameTaken:
		fe := newFormError(ErrConflict, FieldUsername, app.MsgUsernameTaken, nil)
		fe.Conflicts = []Field{FieldUsername}
		return fe
	case emailTaken:
		fe := newFormError(ErrConflict, FieldEmail, app.MsgEmailTaken, nil)
		fe.Conflicts = []Field{FieldEmail}
		return fe
	default:
		return nil
	}
}

func (s *registrationService) registrationError(err error) *FormError {
	if fe, ok := AsFormError(err); ok {
		metrics.RegistrationsTotal.WithLabelValues(metrics.OutcomeConflict).Inc()
		return fe
	}

	switch {
	case errors.Is(err, store.ErrUserAlreadyExists):
		metrics.RegistrationsTotal.WithLabelValues(metrics.OutcomeConflict).Inc()
		fe := newFormError(ErrConflict, FieldConflict, app.MsgAlreadyRegistered, err)
		if errors.Is(err, store.ErrUsernameTaken) {
			fe.Conflicts = []Field{FieldUsername}
		}
		if errors.Is(err, store.ErrEmailTaken) {
			fe.Conflicts = []Field{FieldEmail}
		}
		return fe

	case errors.Is(err, crypto.ErrPasswordTooLong):
		metrics.RegistrationsTotal.WithLabelValues(metrics.OutcomeValidation).Inc()
		return newFormError(ErrValidation, FieldPassword, app.MsgPasswordTooLong, err)

	default:
		metrics.RegistrationsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return newFormError(ErrStorage, FieldStorage, app.MsgRegistrationFailed, err)
	}
}
