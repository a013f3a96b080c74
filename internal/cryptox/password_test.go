package cryptox

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("Secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret1", hash, "hash must not be the plaintext")

	require.NoError(t, h.Compare("Secret1", hash))

	err = h.Compare("secret1", hash)
	assert.True(t, errors.Is(err, ErrMismatch), "want ErrMismatch, got %v", err)
}

func TestBcryptHasher_SaltedHashesDiffer(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestBcryptHasher_CorruptHash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	err := h.Compare("x", "not-a-bcrypt-hash")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrMismatch))
}

func TestNewBcryptHasher_CostBounds(t *testing.T) {
	assert.Equal(t, DefaultCost, NewBcryptHasher(0).cost)
	assert.Equal(t, DefaultCost, NewBcryptHasher(bcrypt.MaxCost+1).cost)
	assert.Equal(t, bcrypt.MinCost, NewBcryptHasher(bcrypt.MinCost).cost)
}
