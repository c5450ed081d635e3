// Package reset generates single-use password-reset tokens.
package reset

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// tokenBytes is the raw entropy per token. 32 bytes (64 hex characters)
// makes guessing a live token within its expiry window infeasible.
const tokenBytes = 32

// Token is a freshly generated reset token and its expiry policy.
type Token struct {
	Value            string
	ExpiresAt        time.Time
	ExpiresInSeconds int
}

// Generator defines the interface for reset-token generation.
type Generator interface {
	// GenerateToken creates a cryptographically random, time-boxed token.
	GenerateToken() (*Token, error)
}

// generator implements Generator backed by crypto/rand.
type generator struct {
	ttl time.Duration
}

// NewGenerator creates a Generator with the given token lifetime.
// A non-positive ttl falls back to one hour.
func NewGenerator(ttl time.Duration) Generator {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &generator{ttl: ttl}
}

// GenerateToken returns a new unguessable token with a fixed expiry.
func (g *generator) GenerateToken() (*Token, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("failed to generate reset token: %w", err)
	}
	return &Token{
		Value:            hex.EncodeToString(buf),
		ExpiresAt:        time.Now().Add(g.ttl),
		ExpiresInSeconds: int(g.ttl.Seconds()),
	}, nil
}
