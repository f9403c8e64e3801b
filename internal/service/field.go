package service

import (
	"context"
	"fmt"
	"strings"

	"agrimanager-backend/internal/auth"
	"agrimanager-backend/internal/database/models"
	apperrors "agrimanager-backend/internal/errors"
	"agrimanager-backend/internal/logger"
	"agrimanager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// FieldService handles business logic for fields
type FieldService struct {
	repo      repository.FieldRepositoryInterface
	farmRepo  repository.FarmRepositoryInterface
	validator *validator.Validate
}

// Ensure FieldService implements FieldServiceInterface
var _ FieldServiceInterface = (*FieldService)(nil)

// NewFieldService creates a new field service
func NewFieldService(repo repository.FieldRepositoryInterface, farmRepo repository.FarmRepositoryInterface, validator *validator.Validate) *FieldService {
	return &FieldService{
		repo:      repo,
		farmRepo:  farmRepo,
		validator: validator,
	}
}

// FieldRequest represents the request to create or update a field
type FieldRequest struct {
	FarmID uint   `json:"farm_id" validate:"required" example:"1"`
	Name   string `json:"name" validate:"required,max=50" example:"Field A"`
	Area   string `json:"area" validate:"max=200" example:"12 ha"`
	Notes  string `json:"notes" validate:"max=200"`
}

// FieldResponse represents a field with its farm name
type FieldResponse struct {
	ID       uint   `json:"id" example:"3"`
	FarmID   uint   `json:"farm_id" example:"1"`
	FarmName string `json:"farm_name" example:"North Farm"`
	Name     string `json:"name" example:"Field A"`
	Area     string `json:"area" example:"12 ha"`
	Notes    string `json:"notes"`
	AuditResponse
}

func (s *FieldService) validate(ctx context.Context, tenantID uint, req *FieldRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateRequest(s.validator, req); err != nil {
		return err
	}
	return checkReference(ctx, s.farmRepo.Exists, tenantID, req.FarmID, "farm_id", "farm")
}

// Create creates a new field on a farm of the caller's tenant
func (s *FieldService) Create(ctx context.Context, caller auth.Identity, req *FieldRequest) (*FieldResponse, error) {
	if err := s.validate(ctx, caller.TenantID, req); err != nil {
		return nil, err
	}

	field := &models.Field{
		FarmID: req.FarmID,
		Name:   req.Name,
		Area:   req.Area,
		Notes:  req.Notes,
	}
	if err := s.repo.Create(ctx, caller.TenantID, caller.UserID, field); err != nil {
		return nil, fmt.Errorf("failed to create field: %w", err)
	}

	logger.WithContext(ctx).WithField("field_id", field.ID).Info("Field created")
	return s.GetByID(ctx, caller, field.ID)
}

// GetAll returns every field of the caller's tenant with farm names
func (s *FieldService) GetAll(ctx context.Context, caller auth.Identity) ([]FieldResponse, error) {
	fields, err := s.repo.ListDetailed(ctx, caller.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get fields: %w", err)
	}

	responses := make([]FieldResponse, len(fields))
	for i := range fields {
		responses[i] = *toFieldResponse(&fields[i])
	}
	return responses, nil
}

// GetByID retrieves a field of the caller's tenant
func (s *FieldService) GetByID(ctx context.Context, caller auth.Identity, id uint) (*FieldResponse, error) {
	field, err := s.repo.GetDetailed(ctx, caller.TenantID, id)
	if err != nil {
		return nil, storeError(err, apperrors.ErrFieldNotFound, "get")
	}
	return toFieldResponse(field), nil
}

// Update overwrites the editable fields of a field
func (s *FieldService) Update(ctx context.Context, caller auth.Identity, id uint, req *FieldRequest) (*FieldResponse, error) {
	field, err := s.repo.GetByID(ctx, caller.TenantID, id)
	if err != nil {
		return nil, storeError(err, apperrors.ErrFieldNotFound, "get")
	}
	if err := s.validate(ctx, caller.TenantID, req); err != nil {
		return nil, err
	}

	field.FarmID = req.FarmID
	field.Name = req.Name
	field.Area = req.Area
	field.Notes = req.Notes

	if err := s.repo.Update(ctx, caller.TenantID, caller.UserID, field); err != nil {
		return nil, storeError(err, apperrors.ErrFieldNotFound, "update")
	}

	logger.WithContext(ctx).WithField("field_id", id).Info("Field updated")
	return s.GetByID(ctx, caller, id)
}

// Delete removes a field that no crop references
func (s *FieldService) Delete(ctx context.Context, caller auth.Identity, id uint) error {
	if err := s.repo.Delete(ctx, caller.TenantID, id); err != nil {
		return storeError(err, apperrors.ErrFieldNotFound, "delete")
	}

	logger.WithContext(ctx).WithField("field_id", id).Info("Field deleted")
	return nil
}

func toFieldResponse(field *models.FieldDetail) *FieldResponse {
	return &FieldResponse{
		ID:            field.ID,
		FarmID:        field.FarmID,
		FarmName:      field.FarmName,
		Name:          field.Name,
		Area:          field.Area,
		Notes:         field.Notes,
		AuditResponse: auditOf(field.TenantModel),
	}
}
