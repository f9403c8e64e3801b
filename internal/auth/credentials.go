package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"agrimanager-backend/internal/database/models"
	apperrors "agrimanager-backend/internal/errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserRepository is the user lookup the credential verifier needs
type UserRepository interface {
	GetActiveByUsername(ctx context.Context, tenantID uint, username string) (*models.User, error)
}

// CredentialVerifier checks a (tenant, username, password) triple against stored users
type CredentialVerifier struct {
	users UserRepository
}

// NewCredentialVerifier creates a new credential verifier
func NewCredentialVerifier(users UserRepository) *CredentialVerifier {
	return &CredentialVerifier{users: users}
}

// decoyHash is compared against when no user matches, so lookups that miss
// take about as long as a wrong password.
var decoyHash = sync.OnceValue(func() []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte("agrimanager-decoy-password"), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("generate decoy hash: %v", err))
	}
	return hash
})

// Verify returns the active user matching all three inputs in an active tenant.
// Every mismatch yields apperrors.ErrInvalidCredentials; store failures are returned wrapped.
func (v *CredentialVerifier) Verify(ctx context.Context, tenantID uint, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if tenantID == 0 || username == "" || password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	user, err := v.users.GetActiveByUsername(ctx, tenantID, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = bcrypt.CompareHashAndPassword(decoyHash(), []byte(password))
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}

// HashPassword returns the bcrypt hash stored for a password
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
