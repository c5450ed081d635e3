// Package token issues and verifies the service's access and refresh JWTs.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for every verification failure: bad signature,
// wrong signing method, wrong secret, expired or malformed token. Callers
// must not be able to tell the reasons apart.
var ErrInvalidToken = errors.New("invalid or expired token")

// Payload is the identity carried inside both token classes.
type Payload struct {
	UserID string
	Email  string
	Role   string
}

// Pair is a freshly issued access/refresh token pair.
// ExpiresIn is the access-token lifetime in seconds.
type Pair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int
}

// claims embeds the registered claims and the identity payload.
type claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Service defines the interface for token issuance and verification.
type Service interface {
	// GenerateTokens signs the payload with both class secrets.
	// Both signatures must succeed or the whole call fails.
	GenerateTokens(payload Payload) (*Pair, error)
	// GenerateAccessToken signs the payload with the access secret only.
	GenerateAccessToken(payload Payload) (string, int, error)
	// VerifyAccessToken checks signature and expiry against the access secret.
	VerifyAccessToken(tokenString string) (*Payload, error)
	// VerifyRefreshToken checks signature and expiry against the refresh secret.
	VerifyRefreshToken(tokenString string) (*Payload, error)
}

// service implements Service using HMAC-SHA256 signing.
type service struct {
	accessSecret   []byte
	refreshSecret  []byte
	accessExpires  time.Duration
	refreshExpires time.Duration
}

// NewService creates a token Service. Access and refresh secrets must differ;
// cross-class verification relies on it.
func NewService(accessSecret, refreshSecret string, accessExpires, refreshExpires time.Duration) Service {
	return &service{
		accessSecret:   []byte(accessSecret),
		refreshSecret:  []byte(refreshSecret),
		accessExpires:  accessExpires,
		refreshExpires: refreshExpires,
	}
}

// GenerateTokens signs the same payload independently per token class.
func (s *service) GenerateTokens(payload Payload) (*Pair, error) {
	accessToken, err := s.sign(payload, s.accessSecret, s.accessExpires)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	refreshToken, err := s.sign(payload, s.refreshSecret, s.refreshExpires)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return &Pair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.accessExpires.Seconds()),
	}, nil
}

// GenerateAccessToken reissues an access token without touching the refresh class.
func (s *service) GenerateAccessToken(payload Payload) (string, int, error) {
	accessToken, err := s.sign(payload, s.accessSecret, s.accessExpires)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign access token: %w", err)
	}
	return accessToken, int(s.accessExpires.Seconds()), nil
}

// VerifyAccessToken verifies tokenString against the access secret.
func (s *service) VerifyAccessToken(tokenString string) (*Payload, error) {
	return s.verify(tokenString, s.accessSecret)
}

// VerifyRefreshToken verifies tokenString against the refresh secret.
func (s *service) VerifyRefreshToken(tokenString string) (*Payload, error) {
	return s.verify(tokenString, s.refreshSecret)
}

// sign creates a signed JWT carrying the payload with the given secret and TTL.
func (s *service) sign(payload Payload, secret []byte, expires time.Duration) (string, error) {
	now := time.Now()
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   payload.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expires)),
		},
		Email: payload.Email,
		Role:  payload.Role,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(secret)
}

// verify parses and validates tokenString with the given secret.
// Every failure collapses into ErrInvalidToken.
func (s *service) verify(tokenString string, secret []byte) (*Payload, error) {
	c := &claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, c, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is acceptable; an attacker-chosen algorithm must fail.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return &Payload{
		UserID: c.Subject,
		Email:  c.Email,
		Role:   c.Role,
	}, nil
}
