// Package hash provides one-way password hashing built on bcrypt.
package hash

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash is a valid bcrypt digest of a throwaway value. Compare runs
// against it when the caller has no real digest, so verification cost stays
// uniform whether or not an account exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Hasher defines the interface for password hashing and verification.
type Hasher interface {
	// Hash produces a salted digest of the plaintext password.
	Hash(plaintext string) (string, error)
	// Compare reports whether plaintext matches the digest.
	Compare(plaintext, digest string) bool
	// CompareDummy burns a bcrypt comparison against a fixed digest.
	// It always returns false.
	CompareDummy(plaintext string) bool
}

// bcryptHasher implements Hasher using golang.org/x/crypto/bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a Hasher with the given work factor.
// Costs outside bcrypt's valid range fall back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

// Hash produces a salted bcrypt digest of the plaintext password.
func (h *bcryptHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

// Compare verifies plaintext against digest using bcrypt's own comparison.
// A manual string comparison would defeat the salt, so never do that here.
func (h *bcryptHasher) Compare(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

// CompareDummy keeps login timing comparable when no user was found.
func (h *bcryptHasher) CompareDummy(plaintext string) bool {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(plaintext))
	return false
}
