package service

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/will4skill/diet-api/entity"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims defines the structure of the JWT payload. The admin claim is an
// explicit typed bool: a token that omits it decodes to a non-admin
// identity.
type Claims struct {
	ID    uint `json:"id"`
	Admin bool `json:"admin"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies the signed identity tokens carried in
// the x-auth-token header.
type TokenService interface {
	Generate(identity *entity.Identity) (string, error)
	Verify(token string) (*entity.Identity, error)
}

type tokenService struct {
	privateKey []byte
	ttl        time.Duration
}

// NewTokenService creates and returns a new TokenService signing with the
// process-wide private key. A zero ttl means tokens do not expire, which
// matches the original API contract.
func NewTokenService(config *entity.Config) TokenService {
	return &tokenService{
		privateKey: []byte(config.JWTPrivateKey),
		ttl:        time.Duration(config.TokenTTLMinutes) * time.Minute,
	}
}

// Generate creates a signed HS256 token encoding {id, admin}.
func (s *tokenService) Generate(identity *entity.Identity) (string, error) {
	claims := &Claims{
		ID:    identity.ID,
		Admin: identity.Admin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	// Zero ttl means non-expiring; any other value, including a negative
	// one, stamps an expiry.
	if s.ttl != 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(s.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.privateKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// Verify parses and validates a token, returning the identity it encodes.
// Any tampering, expiry, or malformed input fails closed.
func (s *tokenService) Verify(tokenString string) (*entity.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure the signing method is HMAC
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.privateKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return &entity.Identity{ID: claims.ID, Admin: claims.Admin}, nil
}
