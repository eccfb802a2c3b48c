package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/app"
	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/crypto"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/metrics"
	"github.com/MKhiriev/go-auth-gate/internal/store"
	"github.com/MKhiriev/go-auth-gate/internal/validators"
	"github.com/MKhiriev/go-auth-gate/models"
)

// authService is the concrete implementation of AuthService.
type authService struct {
	// users is the credential store used to look accounts up by username.
	users store.UserRepository

	// sessions receives the session created on successful login.
	sessions store.SessionStore

	// guard decides whether the presented token is already a live session.
	guard SessionGuard

	hasher    crypto.PasswordHasher
	tokens    crypto.TokenGenerator
	validator validators.Validator

	// lifetime is added to the login time to get the session expiry.
	lifetime time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// AuthDeps groups the collaborators of NewAuthService.
type AuthDeps struct {
	Users     store.UserRepository
	Sessions  store.SessionStore
	Guard     SessionGuard
	Hasher    crypto.PasswordHasher
	Tokens    crypto.TokenGenerator
	Validator validators.Validator
}

// NewAuthService constructs an AuthService issuing sessions valid for
// lifetime. A non-positive lifetime falls back to the configured default.
func NewAuthService(deps AuthDeps, lifetime time.Duration, logger *logger.Logger) AuthService {
	if lifetime <= 0 {
		lifetime = config.DefaultSessionLifetime
	}
	return &authService{
		users:     deps.Users,
		sessions:  deps.Sessions,
		guard:     deps.Guard,
		hasher:    deps.Hasher,
		tokens:    deps.Tokens,
		validator: deps.Validator,
		lifetime:  lifetime,
		now:       time.Now,
		logger:    logger,
	}
}

// Login authenticates an existing user.
//
// An unknown username and a wrong password produce the same error, and both
// paths run one bcrypt comparison. On success a new token is issued and the
// presented token, if any, is destroyed.
func (a *authService) Login(ctx context.Context, creds models.Credentials, presentedToken string) (models.SessionContext, error) {
	log := logger.FromContext(ctx)

	if presentedToken != "" {
		if current, err := a.guard.Authenticate(ctx, presentedToken); err == nil {
			return current, nil
		}
	}

	creds.Username = strings.TrimSpace(creds.Username)
	if err := a.validator.Validate(ctx, creds); err != nil {
		metrics.LoginsTotal.WithLabelValues(metrics.OutcomeValidation).Inc()
		return models.SessionContext{}, validationFormError(err)
	}

	user, err := a.users.FindUserByUsername(ctx, creds.Username)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		a.hasher.SimulateCompare(creds.Password)
		return models.SessionContext{}, a.invalidCredentials()
	case err != nil:
		log.Err(err).Str("func", "*authService.Login").Msg("user lookup failed")
		metrics.LoginsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return models.SessionContext{}, newFormError(ErrStorage, FieldStorage, app.MsgLoginFailed, err)
	}

	if err = a.hasher.Compare(user.PasswordHash, creds.Password); err != nil {
		if !errors.Is(err, crypto.ErrMismatchedPassword) {
			log.Err(err).Str("func", "*authService.Login").Int64("user_id", user.UserID).Msg("stored password hash is unusable")
		}
		return models.SessionContext{}, a.invalidCredentials()
	}

	session, err := a.newSession(user)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("token generation failed")
		metrics.LoginsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return models.SessionContext{}, newFormError(ErrStorage, FieldStorage, app.MsgLoginFailed, err)
	}

	if err = a.sessions.CreateSession(ctx, session); err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("session creation failed")
		metrics.LoginsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return models.SessionContext{}, newFormError(ErrStorage, FieldStorage, app.MsgLoginFailed, err)
	}

	// the pre-login token must not survive the privilege change
	if presentedToken != "" {
		if err = a.sessions.DeleteSession(ctx, presentedToken); err != nil {
			log.Warn().Err(err).Str("func", "*authService.Login").Msg("could not invalidate previous session token")
		}
	}

	metrics.LoginsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	log.Info().Str("func", "*authService.Login").Int64("user_id", user.UserID).Msg("user logged in")

	return session.Context(), nil
}

func (a *authService) newSession(user models.User) (models.Session, error) {
	token, err := a.tokens.NewToken()
	if err != nil {
		return models.Session{}, err
	}

	now := a.now().UTC()
	return models.Session{
		Token:     token,
		UserID:    user.UserID,
		Username:  user.Username,
		CreatedAt: now,
		ExpiresAt: now.Add(a.lifetime),
	}, nil
}

func (a *authService) invalidCredentials() *FormError {
	metrics.LoginsTotal.WithLabelValues(metrics.OutcomeInvalidCreds).Inc()
	return newFormError(ErrInvalidCredentials, FieldNone, app.MsgInvalidCredentials, nil)
}
