package service

import (
	"context"
	"fmt"

	"agrimanager-backend/internal/auth"
	"agrimanager-backend/internal/database/models"
	apperrors "agrimanager-backend/internal/errors"
	"agrimanager-backend/internal/logger"
	"agrimanager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// IncomeService handles business logic for income records
type IncomeService struct {
	repo      repository.IncomeRepositoryInterface
	cropRepo  repository.CropRepositoryInterface
	validator *validator.Validate
}

// Ensure IncomeService implements IncomeServiceInterface
var _ IncomeServiceInterface = (*IncomeService)(nil)

// NewIncomeService creates a new income service
func NewIncomeService(repo repository.IncomeRepositoryInterface, cropRepo repository.CropRepositoryInterface, validator *validator.Validate) *IncomeService {
	return &IncomeService{
		repo:      repo,
		cropRepo:  cropRepo,
		validator: validator,
	}
}

// IncomeRequest represents the request to create or update an income record.
// When TotalAmount is omitted it is computed as Quantity x PricePerUnit.
type IncomeRequest struct {
	CropID       uint             `json:"crop_id" validate:"required" example:"5"`
	Quantity     *decimal.Decimal `json:"quantity,omitempty" swaggertype:"string" example:"10"`
	PricePerUnit *decimal.Decimal `json:"price_per_unit,omitempty" swaggertype:"string" example:"25.00"`
	TotalAmount  *decimal.Decimal `json:"total_amount,omitempty" swaggertype:"string" example:"250.00"`
	SaleDate     models.Date      `json:"sale_date" swaggertype:"string" format:"date" example:"2024-09-10"`
	Notes        string           `json:"notes" validate:"max=200"`
}

// IncomeResponse represents an income record with its crop name
type IncomeResponse struct {
	ID           uint             `json:"id" example:"11"`
	CropID       uint             `json:"crop_id" example:"5"`
	CropName     string           `json:"crop_name" example:"Wheat"`
	Quantity     *decimal.Decimal `json:"quantity,omitempty" swaggertype:"string" example:"10"`
	PricePerUnit *decimal.Decimal `json:"price_per_unit,omitempty" swaggertype:"string" example:"25.00"`
	TotalAmount  decimal.Decimal  `json:"total_amount" swaggertype:"string" example:"250.00"`
	SaleDate     models.Date      `json:"sale_date" swaggertype:"string" format:"date" example:"2024-09-10"`
	Notes        string           `json:"notes"`
	AuditResponse
}

func (s *IncomeService) validateShape(req *IncomeRequest) error {
	if err := validateRequest(s.validator, req); err != nil {
		return err
	}
	if req.Quantity != nil && req.Quantity.IsNegative() {
		return apperrors.NewValidationError("quantity", "Quantity cannot be negative")
	}
	if req.PricePerUnit != nil && req.PricePerUnit.IsNegative() {
		return apperrors.NewValidationError("price_per_unit", "Price per unit cannot be negative")
	}
	if req.TotalAmount == nil {
		if req.Quantity == nil || req.PricePerUnit == nil {
			return apperrors.NewValidationError("total_amount", "total_amount is required unless quantity and price_per_unit are given")
		}
		total := req.Quantity.Mul(*req.PricePerUnit)
		req.TotalAmount = &total
	}
	if req.TotalAmount.IsNegative() {
		return apperrors.NewValidationError("total_amount", "Total amount cannot be negative")
	}
	return requireDate("sale_date", req.SaleDate)
}

// Create records a new sale of a crop of the caller's tenant
func (s *IncomeService) Create(ctx context.Context, caller auth.Identity, req *IncomeRequest) (*IncomeResponse, error) {
	if err := s.validateShape(req); err != nil {
		return nil, err
	}
	if err := checkReference(ctx, s.cropRepo.Exists, caller.TenantID, req.CropID, "crop_id", "crop"); err != nil {
		return nil, err
	}

	income := &models.Income{}
	applyIncomeRequest(income, req)
	if err := s.repo.Create(ctx, caller.TenantID, caller.UserID, income); err != nil {
		return nil, fmt.Errorf("failed to create income: %w", err)
	}

	logger.WithContext(ctx).WithField("income_id", income.ID).Info("Income created")
	return s.GetByID(ctx, caller, income.ID)
}

// GetAll returns every income record of the caller's tenant with crop names
func (s *IncomeService) GetAll(ctx context.Context, caller auth.Identity) ([]IncomeResponse, error) {
	incomes, err := s.repo.ListDetailed(ctx, caller.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get income: %w", err)
	}

	responses := make([]IncomeResponse, len(incomes))
	for i := range incomes {
		responses[i] = *toIncomeResponse(&incomes[i])
	}
	return responses, nil
}

// GetByID retrieves an income record of the caller's tenant
func (s *IncomeService) GetByID(ctx context.Context, caller auth.Identity, id uint) (*IncomeResponse, error) {
	income, err := s.repo.GetDetailed(ctx, caller.TenantID, id)
	if err != nil {
		return nil, storeError(err, apperrors.ErrIncomeNotFound, "get")
	}
	return toIncomeResponse(income), nil
}

// Update overwrites the editable fields of an income record
func (s *IncomeService) Update(ctx context.Context, caller auth.Identity, id uint, req *IncomeRequest) (*IncomeResponse, error) {
	if err := s.validateShape(req); err != nil {
		return nil, err
	}

	income, err := s.repo.GetByID(ctx, caller.TenantID, id)
	if err != nil {
		return nil, storeError(err, apperrors.ErrIncomeNotFound, "get")
	}
	if err := checkReference(ctx, s.cropRepo.Exists, caller.TenantID, req.CropID, "crop_id", "crop"); err != nil {
		return nil, err
	}

	applyIncomeRequest(income, req)
	if err := s.repo.Update(ctx, caller.TenantID, caller.UserID, income); err != nil {
		return nil, storeError(err, apperrors.ErrIncomeNotFound, "update")
	}

	logger.WithContext(ctx).WithField("income_id", id).Info("Income updated")
	return s.GetByID(ctx, caller, id)
}

// Delete removes an income record
func (s *IncomeService) Delete(ctx context.Context, caller auth.Identity, id uint) error {
	if err := s.repo.Delete(ctx, caller.TenantID, id); err != nil {
		return storeError(err, apperrors.ErrIncomeNotFound, "delete")
	}

	logger.WithContext(ctx).WithField("income_id", id).Info("Income deleted")
	return nil
}

// Export renders the caller's income listing as an XLSX workbook
func (s *IncomeService) Export(ctx context.Context, caller auth.Identity) ([]byte, error) {
	incomes, err := s.repo.ListDetailed(ctx, caller.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get income: %w", err)
	}

	rows := make([][]interface{}, len(incomes))
	for i, in := range incomes {
		rows[i] = []interface{}{
			in.ID,
			in.SaleDate.String(),
			in.CropName,
			optionalFloat(in.Quantity),
			optionalFloat(in.PricePerUnit),
			in.TotalAmount.InexactFloat64(),
			in.Notes,
		}
	}
	return renderWorkbook("Income", []string{"ID", "Date", "Crop", "Quantity", "Price Per Unit", "Total Amount", "Notes"}, rows)
}

func optionalFloat(d *decimal.Decimal) interface{} {
	if d == nil {
		return nil
	}
	return d.InexactFloat64()
}

func applyIncomeRequest(income *models.Income, req *IncomeRequest) {
	income.CropID = req.CropID
	income.Quantity = req.Quantity
	income.PricePerUnit = req.PricePerUnit
	income.TotalAmount = req.TotalAmount.Round(2)
	income.SaleDate = req.SaleDate
	income.Notes = req.Notes
}

func toIncomeResponse(income *models.IncomeDetail) *IncomeResponse {
	return &IncomeResponse{
		ID:            income.ID,
		CropID:        income.CropID,
		CropName:      income.CropName,
		Quantity:      income.Quantity,
		PricePerUnit:  income.PricePerUnit,
		TotalAmount:   income.TotalAmount,
		SaleDate:      income.SaleDate,
		Notes:         income.Notes,
		AuditResponse: auditOf(income.TenantModel),
	}
}
