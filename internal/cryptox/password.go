// Package cryptox contains the password hashing used by the user service.
// Passwords are never stored or compared in plaintext.
package cryptox

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used when none is configured.
const DefaultCost = bcrypt.DefaultCost

// ErrMismatch is returned by Compare when the password does not match the hash.
var ErrMismatch = errors.New("password mismatch")

// Hasher hashes passwords and checks candidates against stored hashes.
type Hasher interface {
	// Hash generates the hashed string from plain text.
	Hash(password string) (string, error)

	// Compare returns nil if plain matches hashed, ErrMismatch if it does not,
	// and any other error if the hash itself is unusable.
	Compare(plain, hashed string) error
}

var _ Hasher = (*BcryptHasher)(nil)

// BcryptHasher is a Hasher backed by golang.org/x/crypto/bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a bcrypt Hasher. Costs outside bcrypt's accepted
// range fall back to DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash error: %w", err)
	}
	return string(hash), nil
}

func (h *BcryptHasher) Compare(plain, hashed string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}
