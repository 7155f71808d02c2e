package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken is returned for every verification failure
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired is returned when the token's exp claim has passed
	ErrTokenExpired = errors.New("token expired")

	// ErrNoSecret is returned when the verifier has no secret configured
	ErrNoSecret = errors.New("jwt secret not configured")
)

// UserClaim is the payload field carrying the identity propagated downstream.
const UserClaim = "user"

// supportedMethods are the HMAC algorithms accepted for a shared secret.
var supportedMethods = []string{
	jwt.SigningMethodHS256.Alg(),
	jwt.SigningMethodHS384.Alg(),
	jwt.SigningMethodHS512.Alg(),
}

// Config holds configuration for HMACVerifier
type Config struct {
	Secret string
	Leeway time.Duration
}

// HMACVerifier verifies HMAC-signed JWTs against a single shared secret.
// It holds no mutable state and is safe for concurrent use.
type HMACVerifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewHMACVerifier creates a verifier for the given secret
func NewHMACVerifier(config Config) *HMACVerifier {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods(supportedMethods),
	}
	if config.Leeway > 0 {
		opts = append(opts, jwt.WithLeeway(config.Leeway))
	}

	return &HMACVerifier{
		secret: []byte(config.Secret),
		parser: jwt.NewParser(opts...),
	}
}

// HasSecret reports whether a secret is configured. Without one every
// verification fails.
func (v *HMACVerifier) HasSecret() bool {
	return len(v.secret) > 0
}

// Verify checks the token signature and time-bound claims and returns the
// decoded payload. All failures wrap ErrInvalidToken.
func (v *HMACVerifier) Verify(_ context.Context, tokenString string) (jwt.MapClaims, error) {
	if !v.HasSecret() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, ErrNoSecret)
	}

	claims := jwt.MapClaims{}
	token, err := v.parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidToken, ErrTokenExpired)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// User returns the identity carried in the payload's user claim. A payload
// without the claim yields nil.
func User(claims jwt.MapClaims) interface{} {
	return claims[UserClaim]
}
