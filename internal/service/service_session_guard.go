package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/app"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/store"
	"github.com/MKhiriev/go-auth-gate/models"
)

type sessionGuard struct {
	sessions store.SessionStore
	now      func() time.Time
	logger   *logger.Logger
}

func NewSessionGuard(sessions store.SessionStore, logger *logger.Logger) SessionGuard {
	return &sessionGuard{
		sessions: sessions,
		now:      time.Now,
		logger:   logger,
	}
}

// Authenticate resolves token to its session. Expired sessions are deleted
// on sight.
func (g *sessionGuard) Authenticate(ctx context.Context, token string) (models.SessionContext, error) {
	log := logger.FromContext(ctx)

	if token == "" {
		return models.SessionContext{}, g.deny()
	}

	session, err := g.sessions.FindSession(ctx, token)
	switch {
	case errors.Is(err, store.ErrSessionNotFound):
		return models.SessionContext{}, g.deny()
	case err != nil:
		log.Err(err).Str("func", "*sessionGuard.Authenticate").Msg("session lookup failed")
		return models.SessionContext{}, newFormError(ErrStorage, FieldStorage, app.MsgServiceUnavailable, err)
	}

	if session.IsExpired(g.now()) {
		if err = g.sessions.DeleteSession(ctx, token); err != nil {
			log.Warn().Err(err).Str("func", "*sessionGuard.Authenticate").Msg("could not delete expired session")
		}
		return models.SessionContext{}, g.deny()
	}

	sc := session.Context()
	if !sc.IsAuthenticated() {
		return models.SessionContext{}, g.deny()
	}

	return sc, nil
}

func (g *sessionGuard) IsAuthenticated(ctx context.Context, token string) bool {
	_, err := g.Authenticate(ctx, token)
	return err == nil
}

func (g *sessionGuard) deny() *FormError {
	return newFormError(ErrNotAuthenticated, FieldNone, "", nil)
}
