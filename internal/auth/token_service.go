package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"podlauncher/internal/model"
)

// DefaultTokenExpiry is the lifetime of a download link when none is configured.
const DefaultTokenExpiry = 15 * time.Minute

// LaunchClaims carry the form values a download link regenerates launch.yaml from.
type LaunchClaims struct {
	Request model.LaunchRequest `json:"req"`
	jwt.RegisteredClaims
}

// TokenService signs and checks download tokens.
type TokenService struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

// NewTokenService creates a token service with the given HMAC secret.
func NewTokenService(secret string, expiry time.Duration) *TokenService {
	if expiry <= 0 {
		expiry = DefaultTokenExpiry
	}
	return &TokenService{
		secret: []byte(secret),
		expiry: expiry,
		now:    time.Now,
	}
}

// Secret is the HMAC key, shared with the request middleware.
func (s *TokenService) Secret() []byte {
	return s.secret
}

// Issue signs a token for req.
func (s *TokenService) Issue(req model.LaunchRequest) (string, error) {
	now := s.now()
	claims := &LaunchClaims{
		Request: req,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   req.Gaspard,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate checks the signature and expiry of tokenString and returns its claims.
func (s *TokenService) Validate(tokenString string) (*LaunchClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &LaunchClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*LaunchClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// ClaimsFromToken extracts launch claims from a token parsed by the middleware.
func ClaimsFromToken(v interface{}) (*LaunchClaims, error) {
	token, ok := v.(*jwt.Token)
	if !ok {
		return nil, errors.New("missing token")
	}
	claims, ok := token.Claims.(*LaunchClaims)
	if !ok {
		return nil, errors.New("unexpected claims type")
	}
	return claims, nil
}
