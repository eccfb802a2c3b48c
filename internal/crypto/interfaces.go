package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher wraps a one-way adaptive hash used for storing and
// verifying user passwords.
type PasswordHasher interface {
	// Hash returns the salted digest of password.
	Hash(password string) (string, error)

	// Compare returns nil when password matches hash and
	// [ErrMismatchedPassword] when it does not.
	Compare(hash, password string) error

	// SimulateCompare spends the same work as a failing Compare. It is called
	// when no stored hash exists so that unknown users and wrong passwords
	// take comparable time.
	SimulateCompare(password string)
}

// TokenGenerator issues opaque random session tokens.
type TokenGenerator interface {
	// NewToken returns a fresh token that has never been issued before with
	// overwhelming probability.
	NewToken() (string, error)
}
