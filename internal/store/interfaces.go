// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-auth-gate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the credential store.
type UserRepository interface {
	// ExistsByUsername reports whether a user with exactly this username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ExistsByEmail reports whether a user with exactly this email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// CreateUser inserts user and returns it with UserID and CreatedAt set.
	// A unique violation is reported as [ErrUserAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns [ErrUserNotFound] when nothing matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// ListUsers returns every user, newest first.
	ListUsers(ctx context.Context) ([]models.User, error)
}

// SessionStore keeps server-side session state keyed by opaque token.
type SessionStore interface {
	CreateSession(ctx context.Context, session models.Session) error

	// FindSession returns [ErrSessionNotFound] for unknown tokens. It does not
	// check expiry.
	FindSession(ctx context.Context, token string) (models.Session, error)

	// DeleteSession removes the session. Deleting an unknown token is not an
	// error.
	DeleteSession(ctx context.Context, token string) error

	// DeleteExpiredSessions removes every session that expired at or before
	// now and returns how many were removed.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// Transactor runs fn inside a single database transaction. Repositories
// called with the ctx passed to fn take part in that transaction.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ErrorClassificator maps driver errors to storage semantics.
type ErrorClassificator interface {
	// Classify tells whether a failed operation may succeed on retry.
	Classify(err error) ErrorClassification

	// UniqueViolation reports whether err is a unique constraint violation
	// and, if the driver says so, which constraint or column was violated.
	UniqueViolation(err error) (constraint string, ok bool)
}
