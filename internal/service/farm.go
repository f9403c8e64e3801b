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

// FarmService handles business logic for farms
type FarmService struct {
	repo      repository.FarmRepositoryInterface
	validator *validator.Validate
}

// Ensure FarmService implements FarmServiceInterface
var _ FarmServiceInterface = (*FarmService)(nil)

// NewFarmService creates a new farm service
func NewFarmService(repo repository.FarmRepositoryInterface, validator *validator.Validate) *FarmService {
	return &FarmService{
		repo:      repo,
		validator: validator,
	}
}

// FarmRequest represents the request to create or update a farm
type FarmRequest struct {
	Name        string `json:"name" validate:"required,max=50" example:"North Farm"`
	Location    string `json:"location" validate:"max=50" example:"Valley Road"`
	TotalFields *int   `json:"total_fields,omitempty" validate:"omitempty,gte=0" example:"4"`
	Notes       string `json:"notes" validate:"max=200"`
}

// FarmResponse represents a farm in API responses
type FarmResponse struct {
	ID          uint   `json:"id" example:"1"`
	Name        string `json:"name" example:"North Farm"`
	Location    string `json:"location" example:"Valley Road"`
	TotalFields *int   `json:"total_fields,omitempty" example:"4"`
	Notes       string `json:"notes"`
	AuditResponse
}

func (s *FarmService) validate(req *FarmRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	return validateRequest(s.validator, req)
}

// Create creates a new farm owned by the caller's tenant
func (s *FarmService) Create(ctx context.Context, caller auth.Identity, req *FarmRequest) (*FarmResponse, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	farm := &models.Farm{
		Name:        req.Name,
		Location:    req.Location,
		TotalFields: req.TotalFields,
		Notes:       req.Notes,
	}
	if err := s.repo.Create(ctx, caller.TenantID, caller.UserID, farm); err != nil {
		return nil, fmt.Errorf("failed to create farm: %w", err)
	}

	logger.WithContext(ctx).WithField("farm_id", farm.ID).Info("Farm created")
	return toFarmResponse(farm), nil
}

// GetAll returns every farm of the caller's tenant
func (s *FarmService) GetAll(ctx context.Context, caller auth.Identity) ([]FarmResponse, error) {
	farms, err := s.repo.List(ctx, caller.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get farms: %w", err)
	}

	responses := make([]FarmResponse, len(farms))
	for i := range farms {
		responses[i] = *toFarmResponse(&farms[i])
	}
	return responses, nil
}

// GetByID retrieves a farm of the caller's tenant
func (s *FarmService) GetByID(ctx context.Context, caller auth.Identity, id uint) (*FarmResponse, error) {
	farm, err := s.repo.GetByID(ctx, caller.TenantID, id)
	if err != nil {
		return nil, storeError(err, apperrors.ErrFarmNotFound, "get")
	}
	return toFarmResponse(farm), nil
}

// Update overwrites the editable fields of a farm
func (s *FarmService) Update(ctx context.Context, caller auth.Identity, id uint, req *FarmRequest) (*FarmResponse, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	farm, err := s.repo.GetByID(ctx, caller.TenantID, id)
	if err != nil {
		return nil, storeError(err, apperrors.ErrFarmNotFound, "get")
	}

	farm.Name = req.Name
	farm.Location = req.Location
	farm.TotalFields = req.TotalFields
	farm.Notes = req.Notes

	if err := s.repo.Update(ctx, caller.TenantID, caller.UserID, farm); err != nil {
		return nil, storeError(err, apperrors.ErrFarmNotFound, "update")
	}

	logger.WithContext(ctx).WithField("farm_id", id).Info("Farm updated")
	return toFarmResponse(farm), nil
}

// Delete removes a farm that no field or crop references
func (s *FarmService) Delete(ctx context.Context, caller auth.Identity, id uint) error {
	if err := s.repo.Delete(ctx, caller.TenantID, id); err != nil {
		return storeError(err, apperrors.ErrFarmNotFound, "delete")
	}

	logger.WithContext(ctx).WithField("farm_id", id).Info("Farm deleted")
	return nil
}

func toFarmResponse(farm *models.Farm) *FarmResponse {
	return &FarmResponse{
		ID:            farm.ID,
		Name:          farm.Name,
		Location:      farm.Location,
		TotalFields:   farm.TotalFields,
		Notes:         farm.Notes,
		AuditResponse: auditOf(farm.TenantModel),
	}
}
