package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"agrimanager-backend/internal/database/models"
	apperrors "agrimanager-backend/internal/errors"
	"agrimanager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// NewValidator returns a validator that reports fields by their JSON names
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// AuditResponse carries the ownership columns returned with every record
type AuditResponse struct {
	CreatedAt  time.Time  `json:"created_at"`
	CreatedBy  uint       `json:"created_by" example:"7"`
	ModifiedAt *time.Time `json:"modified_at,omitempty"`
	ModifiedBy *uint      `json:"modified_by,omitempty"`
}

func auditOf(m models.TenantModel) AuditResponse {
	return AuditResponse{
		CreatedAt:  m.CreatedAt,
		CreatedBy:  m.CreatedBy,
		ModifiedAt: m.ModifiedAt,
		ModifiedBy: m.ModifiedBy,
	}
}

// validateRequest runs struct validation and reports the first failing field
func validateRequest(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperrors.NewValidationError("", err.Error())
	}

	fe := fieldErrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return apperrors.NewValidationError(field, fmt.Sprintf("%s is required", field))
	case "max":
		return apperrors.NewValidationError(field, fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
	case "gte":
		return apperrors.NewValidationError(field, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
	default:
		return apperrors.NewValidationError(field, fmt.Sprintf("%s is invalid", field))
	}
}

// requireDate rejects an unset date
func requireDate(field string, d models.Date) error {
	if d.IsZero() {
		return apperrors.NewValidationError(field, fmt.Sprintf("%s is required", field))
	}
	return nil
}

// existsFunc is the Exists method of a tenant-scoped repository
type existsFunc func(ctx context.Context, tenantID, id uint) (bool, error)

// checkReference fails with a ValidationError when id does not name a record of the tenant.
// Records of other tenants are reported exactly like missing ones.
func checkReference(ctx context.Context, exists existsFunc, tenantID, id uint, field, entity string) error {
	ok, err := exists(ctx, tenantID, id)
	if err != nil {
		return fmt.Errorf("failed to verify %s: %w", entity, err)
	}
	if !ok {
		return apperrors.NewValidationError(field, fmt.Sprintf("%s not found", entity))
	}
	return nil
}

// storeError maps repository failures onto the application errors of an entity
func storeError(err error, notFound *apperrors.NotFoundError, action string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case errors.Is(err, repository.ErrHasDependents):
		return apperrors.NewHasDependentsError(notFound.Entity)
	default:
		return fmt.Errorf("failed to %s %s: %w", action, notFound.Entity, err)
	}
}
