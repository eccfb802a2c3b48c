// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-auth-gate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// RegistrationService creates accounts.
type RegistrationService interface {
	// Register validates form, checks username and email uniqueness, and
	// persists a new user. No session is created.
	Register(ctx context.Context, form models.RegistrationForm) (models.User, error)
}

// AuthService verifies credentials and establishes sessions.
type AuthService interface {
	// Login authenticates creds and returns a fresh session. presentedToken
	// is the token the client sent, if any: when it still maps to a live
	// session that session is returned unchanged; otherwise it is destroyed
	// once the new session exists.
	Login(ctx context.Context, creds models.Credentials, presentedToken string) (models.SessionContext, error)
}

// SessionGuard is the single arbiter of whether a request is authenticated.
type SessionGuard interface {
	// Authenticate resolves token to a live session or returns an
	// ErrNotAuthenticated *FormError.
	Authenticate(ctx context.Context, token string) (models.SessionContext, error)

	IsAuthenticated(ctx context.Context, token string) bool
}

// LogoutService tears sessions down.
type LogoutService interface {
	// Logout destroys the session behind token. Unknown and empty tokens are
	// not errors.
	Logout(ctx context.Context, token string) error
}

// DashboardService serves the protected user listing.
type DashboardService interface {
	// ListUsers returns every user newest first. session must come from
	// SessionGuard.Authenticate.
	ListUsers(ctx context.Context, session models.SessionContext) ([]models.UserListing, error)
}
