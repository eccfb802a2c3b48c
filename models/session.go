// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is the server-side state anchored by an opaque client-held token.
type Session struct {
	// Token is the random opaque identifier carried by the session cookie.
	Token string `json:"-"`

	// UserID identifies the authenticated account.
	UserID int64 `json:"user_id"`

	// Username is cached so protected pages can greet the user without
	// touching the credential store.
	Username string `json:"username"`

	// CreatedAt is the moment the session was established.
	CreatedAt time.Time `json:"created_at"`

	// ExpiresAt is the moment after which the session is no longer valid.
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired reports whether the session is no longer valid at now.
func (s Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// SessionContext is the authenticated identity resolved by the session guard
// and handed to protected operations.
type SessionContext struct {
	Token    string
	UserID   int64
	Username string
}

// Context builds the SessionContext carried by this session.
func (s Session) Context() SessionContext {
	return SessionContext{
		Token:    s.Token,
		UserID:   s.UserID,
		Username: s.Username,
	}
}

// IsAuthenticated reports whether the context carries an established identity.
func (c SessionContext) IsAuthenticated() bool {
	return c.Token != "" && c.UserID > 0
}
