package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an INSERT into users violates a
	// unique constraint. It is always present in the chain, optionally joined
	// by [ErrUsernameTaken] or [ErrEmailTaken] when the driver names the
	// violated constraint.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUsernameTaken narrows [ErrUserAlreadyExists] to the username column.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrEmailTaken narrows [ErrUserAlreadyExists] to the email column.
	ErrEmailTaken = errors.New("email already taken")

	// ErrUserNotFound is returned when a lookup by username matches no row.
	ErrUserNotFound = errors.New("user not found")

	// ErrSessionNotFound is returned when no session exists for a token.
	ErrSessionNotFound = errors.New("session not found")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")

	ErrUnknownDriver         = errors.New("unknown database driver")
	ErrUnknownSessionBackend = errors.New("unknown session backend")
	ErrSessionStoreFailure   = errors.New("session store failure")
)
