package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"agrimanager-backend/internal/auth"
	"agrimanager-backend/internal/database/models"
	apperrors "agrimanager-backend/internal/errors"
	"agrimanager-backend/internal/logger"
	"agrimanager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// CropService handles business logic for crops
type CropService struct {
	repo       repository.CropRepositoryInterface
	farmRepo   repository.FarmRepositoryInterface
	fieldRepo  repository.FieldRepositoryInterface
	statusRepo repository.CropStatusRepositoryInterface
	validator  *validator.Validate
}

// Ensure CropService implements CropServiceInterface
var _ CropServiceInterface = (*CropService)(nil)

// NewCropService creates a new crop service
func NewCropService(
	repo repository.CropRepositoryInterface,
	farmRepo repository.FarmRepositoryInterface,
	fieldRepo repository.FieldRepositoryInterface,
	statusRepo repository.CropStatusRepositoryInterface,
	validator *validator.Validate,
) *CropService {
	return &CropService{
		repo:       repo,
		farmRepo:   farmRepo,
		fieldRepo:  fieldRepo,
		statusRepo: statusRepo,
		validator:  validator,
	}
}

// CropRequest represents the request to create or update a crop
type CropRequest struct {
	FarmID          uint         `json:"farm_id" validate:"required" example:"1"`
	FieldID         uint         `json:"field_id" validate:"required" example:"3"`
	StatusID        uint         `json:"status_id" validate:"required" example:"2"`
	Name            string       `json:"name" validate:"required,max=50" example:"Wheat"`
	Season          string       `json:"season" validate:"max=50" example:"Rabi"`
	StartDate       models.Date  `json:"start_date" swaggertype:"string" format:"date" example:"2024-03-01"`
	ExpectedEndDate *models.Date `json:"expected_end_date,omitempty" swaggertype:"string" format:"date" example:"2024-08-31"`
	ExpectedYield   string       `json:"expected_yield" validate:"max=100" example:"40 q"`
}

// CropResponse represents a crop with its farm, field and status names
type CropResponse struct {
	ID              uint         `json:"id" example:"5"`
	FarmID          uint         `json:"farm_id" example:"1"`
	FarmName        string       `json:"farm_name" example:"North Farm"`
	FieldID         uint         `json:"field_id" example:"3"`
	FieldName       string       `json:"field_name" example:"Field A"`
	StatusID        uint         `json:"status_id" example:"2"`
	StatusName      string       `json:"status_name" example:"Growing"`
	Name            string       `json:"name" example:"Wheat"`
	Season          string       `json:"season" example:"Rabi"`
	StartDate       models.Date  `json:"start_date" swaggertype:"string" format:"date" example:"2024-03-01"`
	ExpectedEndDate *models.Date `json:"expected_end_date,omitempty" swaggertype:"string" format:"date" example:"2024-08-31"`
	ExpectedYield   string       `json:"expected_yield" example:"40 q"`
	AuditResponse
}

// validateShape checks the request on its own, before any store access
func (s *CropService) validateShape(req *CropRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateRequest(s.validator, req); err != nil {
		return err
	}
	if err := requireDate("start_date", req.StartDate); err != nil {
		return err
	}
	if req.ExpectedEndDate != nil && req.ExpectedEndDate.IsZero() {
		req.ExpectedEndDate = nil
	}
	if req.ExpectedEndDate != nil && req.ExpectedEndDate.Before(req.StartDate) {
		return apperrors.ErrEndDateBeforeStartDate
	}
	return nil
}

// validateReferences checks that farm, field and status belong to the tenant
// and that the field lies on the farm
func (s *CropService) validateReferences(ctx context.Context, tenantID uint, req *CropRequest) error {
	if err := checkReference(ctx, s.farmRepo.Exists, tenantID, req.FarmID, "farm_id", "farm"); err != nil {
		return err
	}

	field, err := s.fieldRepo.GetByID(ctx, tenantID, req.FieldID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewValidationError("field_id", "field not found")
		}
		return fmt.Errorf("failed to verify field: %w", err)
	}
	if field.FarmID != req.FarmID {
		return apperrors.NewValidationError("field_id", "field does not belong to the selected farm")
	}

	return checkReference(ctx, s.statusRepo.Exists, tenantID, req.StatusID, "status_id", "crop status")
}

// Create creates a new crop of the caller's tenant
func (s *CropService) Create(ctx context.Context, caller auth.Identity, req *CropRequest) (*CropResponse, error) {
	if err := s.validateShape(req); err != nil {
		return nil, err
	}
	if err := s.validateReferences(ctx, caller.TenantID, req); err != nil {
		return nil, err
	}

	crop := &models.Crop{}
	applyCropRequest(crop, req)
	if err := s.repo.Create(ctx, caller.TenantID, caller.UserID, crop); err != nil {
		return nil, fmt.Errorf("failed to create crop: %w", err)
	}

	logger.WithContext(ctx).WithField("crop_id", crop.ID).Info("Crop created")
	return s.GetByID(ctx, caller, crop.ID)
}

// GetAll returns every crop of the caller's tenant with related names
func (s *CropService) GetAll(ctx context.Context, caller auth.Identity) ([]CropResponse, error) {
	crops, err := s.repo.ListDetailed(ctx, caller.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get crops: %w", err)
	}

	responses := make([]CropResponse, len(crops))
	for i := range crops {
		responses[i] = *toCropResponse(&crops[i])
	}
	return responses, nil
}

// GetByID retrieves a crop of the caller's tenant
func (s *CropService) GetByID(ctx context.Context, caller auth.Identity, id uint) (*CropResponse, error) {
	crop, err := s.repo.GetDetailed(ctx, caller.TenantID, id)
	if err != nil {
		return nil, storeError(err, apperrors.ErrCropNotFound, "get")
	}
	return toCropResponse(crop), nil
}

// Update overwrites the editable fields of a crop
func (s *CropService) Update(ctx context.Context, caller auth.Identity, id uint, req *CropRequest) (*CropResponse, error) {
	if err := s.validateShape(req); err != nil {
		return nil, err
	}

	crop, err := s.repo.GetByID(ctx, caller.TenantID, id)
	if err != nil {
		return nil, storeError(err, apperrors.ErrCropNotFound, "get")
	}
	if err := s.validateReferences(ctx, caller.TenantID, req); err != nil {
		return nil, err
	}

	applyCropRequest(crop, req)
	if err := s.repo.Update(ctx, caller.TenantID, caller.UserID, crop); err != nil {
		return nil, storeError(err, apperrors.ErrCropNotFound, "update")
	}

	logger.WithContext(ctx).WithField("crop_id", id).Info("Crop updated")
	return s.GetByID(ctx, caller, id)
}

// Delete removes a crop that no expense or income references
func (s *CropService) Delete(ctx context.Context, caller auth.Identity, id uint) error {
	if err := s.repo.Delete(ctx, caller.TenantID, id); err != nil {
		return storeError(err, apperrors.ErrCropNotFound, "delete")
	}

	logger.WithContext(ctx).WithField("crop_id", id).Info("Crop deleted")
	return nil
}

func applyCropRequest(crop *models.Crop, req *CropRequest) {
	crop.FarmID = req.FarmID
	crop.FieldID = req.FieldID
	crop.StatusID = req.StatusID
	crop.Name = req.Name
	crop.Season = req.Season
	crop.StartDate = req.StartDate
	crop.ExpectedEndDate = req.ExpectedEndDate
	crop.ExpectedYield = req.ExpectedYield
}

func toCropResponse(crop *models.CropDetail) *CropResponse {
	return &CropResponse{
		ID:              crop.ID,
		FarmID:          crop.FarmID,
		FarmName:        crop.FarmName,
		FieldID:         crop.FieldID,
		FieldName:       crop.FieldName,
		StatusID:        crop.StatusID,
		StatusName:      crop.StatusName,
		Name:            crop.Name,
		Season:          crop.Season,
		StartDate:       crop.StartDate,
		ExpectedEndDate: crop.ExpectedEndDate,
		ExpectedYield:   crop.ExpectedYield,
		AuditResponse:   auditOf(crop.TenantModel),
	}
}
