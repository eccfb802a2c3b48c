package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// sessionTokenBytes is the entropy of a session token (256 bits).
const sessionTokenBytes = 32

// RandomTokenGenerator implements [TokenGenerator] on crypto/rand.
type RandomTokenGenerator struct{}

// NewRandomTokenGenerator returns the default token generator.
func NewRandomTokenGenerator() RandomTokenGenerator {
	return RandomTokenGenerator{}
}

// NewToken returns 32 random bytes encoded as 64 hex characters.
func (RandomTokenGenerator) NewToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenGenerationFailed, err)
	}
	return hex.EncodeToString(buf), nil
}
