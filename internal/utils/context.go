// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes type-safe context keys, trace id generation and HTTP response
// helpers.
package utils

import (
	"context"

	"github.com/MKhiriev/go-auth-gate/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key under which the session guard stores the
// authenticated models.SessionContext.
var SessionCtxKey = contextKey("session")

// WithSession returns a copy of ctx carrying session.
func WithSession(ctx context.Context, session models.SessionContext) context.Context {
	return context.WithValue(ctx, SessionCtxKey, session)
}

// GetSessionFromContext retrieves the session stored by WithSession.
//
// ok is false when no session is stored or the stored session is not
// authenticated.
func GetSessionFromContext(ctx context.Context) (models.SessionContext, bool) {
	session, ok := ctx.Value(SessionCtxKey).(models.SessionContext)
	if !ok || !session.IsAuthenticated() {
		return models.SessionContext{}, false
	}
	return session, true
}
