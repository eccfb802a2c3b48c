// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/metrics"
)

// SessionSweeper periodically purges expired sessions from stores that do
// not expire entries on their own.
type SessionSweeper struct {
	sessions ExpiredSessionDeleter
	interval time.Duration
	now      func() time.Time
	logger   *logger.Logger
}

func NewSessionSweeper(sessions ExpiredSessionDeleter, interval time.Duration, logger *logger.Logger) *SessionSweeper {
	return &SessionSweeper{
		sessions: sessions,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

// Run sweeps once per interval until ctx is cancelled. A failed sweep is
// logged and retried on the next tick.
func (s *SessionSweeper) Run(ctx context.Context) {
	if s.interval <= 0 {
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Sweep(ctx); err != nil && ctx.Err() == nil {
				s.logger.Err(err).Str("func", "*SessionSweeper.Run").Msg("session sweep failed")
			}
		}
	}
}

// Sweep deletes every session expired at the current time.
func (s *SessionSweeper) Sweep(ctx context.Context) (int64, error) {
	deleted, err := s.sessions.DeleteExpiredSessions(ctx, s.now().UTC())
	if err != nil {
		return 0, err
	}

	if deleted > 0 {
		metrics.SessionsSweptTotal.Add(float64(deleted))
		s.logger.Info().Str("func", "*SessionSweeper.Sweep").Int64("deleted", deleted).Msg("expired sessions swept")
	}
	return deleted, nil
}
