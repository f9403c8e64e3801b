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

// CropStatusService handles business logic for crop statuses
type CropStatusService struct {
	repo      repository.CropStatusRepositoryInterface
	validator *validator.Validate
}

// Ensure CropStatusService implements CropStatusServiceInterface
var _ CropStatusServiceInterface = (*CropStatusService)(nil)

// NewCropStatusService creates a new crop status service
func NewCropStatusService(repo repository.CropStatusRepositoryInterface, validator *validator.Validate) *CropStatusService {
	return &CropStatusService{
		repo:      repo,
		validator: validator,
	}
}

// CropStatusRequest represents the request to create or update a crop status.
// IsActive defaults to true when omitted on create and is left unchanged when omitted on update.
type CropStatusRequest struct {
	Name     string `json:"name" validate:"required,max=50" example:"Growing"`
	IsActive *bool  `json:"is_active,omitempty" example:"true"`
}

// CropStatusResponse represents a crop status in API responses
type CropStatusResponse struct {
	ID       uint   `json:"id" example:"2"`
	Name     string `json:"name" example:"Growing"`
	IsActive bool   `json:"is_active" example:"true"`
	AuditResponse
}

// CropStatusOption is one entry of the crop status dropdown
type CropStatusOption struct {
	ID   uint   `json:"id" example:"2"`
	Name string `json:"name" example:"Growing"`
}

func (s *CropStatusService) validate(req *CropStatusRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	return validateRequest(s.validator, req)
}

// Create creates a new crop status of the caller's tenant
func (s *CropStatusService) Create(ctx context.Context, caller auth.Identity, req *CropStatusRequest) (*CropStatusResponse, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	status := &models.CropStatus{
		Name:     req.Name,
		IsActive: true,
	}
	if req.IsActive != nil {
		status.IsActive = *req.IsActive
	}
	if err := s.repo.Create(ctx, caller.TenantID, caller.UserID, status); err != nil {
		return nil, fmt.Errorf("failed to create crop status: %w", err)
	}

	logger.WithContext(ctx).WithField("status_id", status.ID).Info("Crop status created")
	return toCropStatusResponse(status), nil
}

// GetAll returns every status of the caller's tenant, active ones first
func (s *CropStatusService) GetAll(ctx context.Context, caller auth.Identity) ([]CropStatusResponse, error) {
	statuses, err := s.repo.List(ctx, caller.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get crop statuses: %w", err)
	}

	responses := make([]CropStatusResponse, len(statuses))
	for i := range statuses {
		responses[i] = *toCropStatusResponse(&statuses[i])
	}
	return responses, nil
}

// Dropdown returns the active statuses of the caller's tenant as id/name pairs
func (s *CropStatusService) Dropdown(ctx context.Context, caller auth.Identity) ([]CropStatusOption, error) {
	statuses, err := s.repo.ListActive(ctx, caller.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get crop statuses: %w", err)
	}

	options := make([]CropStatusOption, len(statuses))
	for i, status := range statuses {
		options[i] = CropStatusOption{ID: status.ID, Name: status.Name}
	}
	return options, nil
}

// GetByID retrieves a crop status of the caller's tenant
func (s *CropStatusService) GetByID(ctx context.Context, caller auth.Identity, id uint) (*CropStatusResponse, error) {
	status, err := s.repo.GetByID(ctx, caller.TenantID, id)
	if err != nil {
		return nil, storeError(err, apperrors.ErrCropStatusNotFound, "get")
	}
	return toCropStatusResponse(status), nil
}

// Update renames a crop status and optionally changes whether it is active
func (s *CropStatusService) Update(ctx context.Context, caller auth.Identity, id uint, req *CropStatusRequest) (*CropStatusResponse, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	status, err := s.repo.GetByID(ctx, caller.TenantID, id)
	if err != nil {
		return nil, storeError(err, apperrors.ErrCropStatusNotFound, "get")
	}

	status.Name = req.Name
	if req.IsActive != nil {
		status.IsActive = *req.IsActive
	}
	if err := s.repo.Update(ctx, caller.TenantID, caller.UserID, status); err != nil {
		return nil, storeError(err, apperrors.ErrCropStatusNotFound, "update")
	}

	logger.WithContext(ctx).WithField("status_id", id).Info("Crop status updated")
	return toCropStatusResponse(status), nil
}

// Delete removes a crop status that no crop uses
func (s *CropStatusService) Delete(ctx context.Context, caller auth.Identity, id uint) error {
	if err := s.repo.Delete(ctx, caller.TenantID, id); err != nil {
		return storeError(err, apperrors.ErrCropStatusNotFound, "delete")
	}

	logger.WithContext(ctx).WithField("status_id", id).Info("Crop status deleted")
	return nil
}

func toCropStatusResponse(status *models.CropStatus) *CropStatusResponse {
	return &CropStatusResponse{
		ID:            status.ID,
		Name:          status.Name,
		IsActive:      status.IsActive,
		AuditResponse: auditOf(status.TenantModel),
	}
}
