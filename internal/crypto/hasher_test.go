package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher(t *testing.T) *BcryptHasher {
	t.Helper()
	h, err := NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)
	return h
}

func TestNewBcryptHasher_FallsBackToDefaultCost(t *testing.T) {
	h, err := NewBcryptHasher(1)
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)
}

func TestBcryptHasher_HashIsNotPlaintext(t *testing.T) {
	h := newTestHasher(t)

	hash, err := h.Hash("secret1")
	require.NoError(t, err)

	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secret1", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	h := newTestHasher(t)

	h1, err := h.Hash("secret1")
	require.NoError(t, err)
	h2, err := h.Hash("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestBcryptHasher_Compare(t *testing.T) {
	h := newTestHasher(t)
	hash, err := h.Hash("secret1")
	require.NoError(t, err)

	tests := []struct {
		name     string
		hash     string
		password string
		wantErr  error
	}{
		{name: "match", hash: hash, password: "secret1"},
		{name: "mismatch", hash: hash, password: "secret2", wantErr: ErrMismatchedPassword},
		{name: "empty password", hash: hash, password: "", wantErr: ErrMismatchedPassword},
		{name: "malformed hash", hash: "not-a-hash", password: "secret1", wantErr: ErrMalformedHash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := h.Compare(tt.hash, tt.password)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBcryptHasher_PasswordTooLong(t *testing.T) {
	h := newTestHasher(t)

	_, err := h.Hash(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestBcryptHasher_SimulateCompareDoesNotPanic(t *testing.T) {
	h := newTestHasher(t)
	assert.NotPanics(t, func() { h.SimulateCompare("whatever") })
}
