package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"agrimanager-backend/internal/database/models"

	"github.com/golang-jwt/jwt/v5"
)

// AuthService issues and validates bearer tokens
type AuthService struct {
	config *AuthConfig
	now    func() time.Time
}

// AuthClaims represents JWT token claims. Only identity is embedded, never credentials.
type AuthClaims struct {
	UserID               uint   `json:"user_id" example:"7"`
	TenantID             uint   `json:"tenant_id" example:"1"`
	Username             string `json:"username" example:"alice"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// Identity returns the caller described by the claims
func (c *AuthClaims) Identity() Identity {
	return Identity{
		UserID:   c.UserID,
		TenantID: c.TenantID,
		Username: c.Username,
	}
}

// Option customises an AuthService
type Option func(*AuthService)

// WithClock replaces the time source used for issuing and validating tokens
func WithClock(now func() time.Time) Option {
	return func(s *AuthService) {
		s.now = now
	}
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, opts ...Option) (*AuthService, error) {
	if config == nil {
		return nil, fmt.Errorf("invalid auth config: config is nil")
	}
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	s := &AuthService{
		config: config,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// GenerateJWT creates a signed token for a verified user and returns its expiry
func (s *AuthService) GenerateJWT(user *models.User) (string, time.Time, error) {
	if user == nil || user.ID == 0 || user.TenantID == 0 {
		return "", time.Time{}, fmt.Errorf("cannot issue token without user and tenant id")
	}

	now := s.now()
	expiresAt := now.Add(s.config.TokenTTL)
	claims := &AuthClaims{
		UserID:   user.ID,
		TenantID: user.TenantID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Audience:  jwt.ClaimStrings{s.config.Audience},
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// ValidateJWT verifies signature, algorithm, issuer, audience and expiry, then returns the claims
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.config.Issuer),
		jwt.WithAudience(s.config.Audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)

	token, err := parser.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.TenantID == 0 || claims.UserID == 0 {
		return nil, errors.New("token is missing identity claims")
	}

	return claims, nil
}

// TokenTTL returns the validity window of issued tokens
func (s *AuthService) TokenTTL() time.Duration {
	return s.config.TokenTTL
}
