package service

import (
	"context"

	"github.com/MKhiriev/go-auth-gate/internal/app"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/metrics"
	"github.com/MKhiriev/go-auth-gate/internal/store"
)

type logoutService struct {
	sessions store.SessionStore
	logger   *logger.Logger
}

func NewLogoutService(sessions store.SessionStore, logger *logger.Logger) LogoutService {
	return &logoutService{
		sessions: sessions,
		logger:   logger,
	}
}

// Logout deletes the server-side session. The caller clears the cookie in
// every case, including when an error is returned.
func (s *logoutService) Logout(ctx context.Context, token string) error {
	metrics.LogoutsTotal.Inc()

	if token == "" {
		return nil
	}

	if err := s.sessions.DeleteSession(ctx, token); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*logoutService.Logout").Msg("session deletion failed")
		return newFormError(ErrStorage, FieldStorage, app.MsgServiceUnavailable, err)
	}
	return nil
}
