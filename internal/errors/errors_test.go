package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "farm"}
		assert.Equal(t, "farm not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "farm"}
		err2 := &NotFoundError{Entity: "farm"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrFarmNotFound, ErrFieldNotFound))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to get crop: %w", ErrCropNotFound)
		assert.True(t, errors.Is(wrapped, ErrCropNotFound))
		assert.True(t, IsNotFound(wrapped))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrExpenseNotFound))
		assert.False(t, IsNotFound(ErrAmountNotPositive))
		assert.False(t, IsNotFound(nil))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		assert.Equal(t, "user already exists with this username", ErrUserExists.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "tenant"}
		assert.Equal(t, "tenant already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrUserExists))
		assert.False(t, IsAlreadyExists(ErrUserNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "name", Message: "is required"}
		assert.Equal(t, "validation error: name - is required", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid body"}
		assert.Equal(t, "validation error: invalid body", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("name", "is required")))
		assert.True(t, IsValidation(ErrEndDateBeforeStartDate))
		assert.False(t, IsValidation(ErrFarmNotFound))
	})

	t.Run("ValidationMessage exposes only the message", func(t *testing.T) {
		wrapped := fmt.Errorf("create crop: %w", ErrEndDateBeforeStartDate)
		assert.Equal(t, "End Date cannot be earlier than Start Date", ValidationMessage(wrapped))
		assert.Equal(t, "boom", ValidationMessage(errors.New("boom")))
	})
}

func TestConflictError(t *testing.T) {
	err := NewHasDependentsError("farm")
	assert.Equal(t, "farm cannot be deleted because other records reference it", err.Error())
	assert.True(t, IsConflict(err))
	assert.True(t, errors.Is(err, &ConflictError{Entity: "farm"}))
	assert.False(t, errors.Is(err, &ConflictError{Entity: "crop"}))
	assert.False(t, IsConflict(ErrFarmNotFound))
}

func TestAuthenticationErrors(t *testing.T) {
	assert.True(t, IsAuthentication(ErrInvalidCredentials))
	assert.True(t, IsAuthentication(fmt.Errorf("login: %w", ErrInvalidCredentials)))
	assert.Equal(t, "Invalid tenant, username, or password", ErrInvalidCredentials.Error())
	assert.False(t, IsAuthentication(ErrJWTSecretMissing))
	assert.True(t, IsConfiguration(ErrJWTSecretMissing))
}
