package store

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionStore(t *testing.T) {
	s := NewMemorySessionStore()
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, s.CreateSession(ctx, models.Session{Token: "a", UserID: 1, ExpiresAt: now.Add(time.Hour)}))
	require.NoError(t, s.CreateSession(ctx, models.Session{Token: "b", UserID: 2, ExpiresAt: now.Add(-time.Minute)}))

	got, err := s.FindSession(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.UserID)

	n, err := s.DeleteExpiredSessions(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = s.FindSession(ctx, "b")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	require.NoError(t, s.DeleteSession(ctx, "a"))
	require.NoError(t, s.DeleteSession(ctx, "a"))
	_, err = s.FindSession(ctx, "a")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
