package crypto

import "errors"

var (
	// ErrMismatchedPassword is returned by Compare when the password does not
	// match the stored hash.
	ErrMismatchedPassword = errors.New("password does not match hash")

	// ErrMalformedHash is returned by Compare when the stored value is not a
	// valid hash.
	ErrMalformedHash = errors.New("malformed password hash")

	// ErrPasswordTooLong is returned by Hash for passwords bcrypt cannot
	// digest (longer than 72 bytes).
	ErrPasswordTooLong = errors.New("password is too long")

	// ErrHashingFailed wraps any other hashing failure.
	ErrHashingFailed = errors.New("password hashing failed")

	// ErrTokenGenerationFailed is returned when the system random source fails.
	ErrTokenGenerationFailed = errors.New("token generation failed")
)
