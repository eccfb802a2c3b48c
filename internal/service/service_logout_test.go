package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-auth-gate/internal/app"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/mock"
	"github.com/MKhiriev/go-auth-gate/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mock.NewMockSessionStore(ctrl)
	svc := NewLogoutService(sessions, logger.Nop())

	sessions.EXPECT().DeleteSession(gomock.Any(), "tok").Return(nil)

	require.NoError(t, svc.Logout(context.Background(), "tok"))
}

func TestLogout_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mock.NewMockSessionStore(ctrl)
	svc := NewLogoutService(sessions, logger.Nop())

	// stores treat a missing token as success
	sessions.EXPECT().DeleteSession(gomock.Any(), "tok").Return(nil).Times(2)

	require.NoError(t, svc.Logout(context.Background(), "tok"))
	require.NoError(t, svc.Logout(context.Background(), "tok"))
	require.NoError(t, svc.Logout(context.Background(), ""))
}

func TestLogout_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mock.NewMockSessionStore(ctrl)
	svc := NewLogoutService(sessions, logger.Nop())

	sessions.EXPECT().DeleteSession(gomock.Any(), "tok").Return(errors.Join(store.ErrSessionStoreFailure, errors.New("timeout")))

	err := svc.Logout(context.Background(), "tok")
	requireFormError(t, err, ErrStorage, FieldStorage, app.MsgServiceUnavailable)
	assert.ErrorIs(t, err, store.ErrSessionStoreFailure)
}
