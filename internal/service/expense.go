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

// ExpenseService handles business logic for expenses
type ExpenseService struct {
	repo         repository.ExpenseRepositoryInterface
	cropRepo     repository.CropRepositoryInterface
	categoryRepo repository.ExpenseCategoryRepositoryInterface
	validator    *validator.Validate
}

// Ensure ExpenseService implements ExpenseServiceInterface
var _ ExpenseServiceInterface = (*ExpenseService)(nil)

// NewExpenseService creates a new expense service
func NewExpenseService(
	repo repository.ExpenseRepositoryInterface,
	cropRepo repository.CropRepositoryInterface,
	categoryRepo repository.ExpenseCategoryRepositoryInterface,
	validator *validator.Validate,
) *ExpenseService {
	return &ExpenseService{
		repo:         repo,
		cropRepo:     cropRepo,
		categoryRepo: categoryRepo,
		validator:    validator,
	}
}

// ExpenseRequest represents the request to create or update an expense
type ExpenseRequest struct {
	CropID      uint            `json:"crop_id" validate:"required" example:"5"`
	CategoryID  uint            `json:"category_id" validate:"required" example:"4"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"150.50"`
	ExpenseDate models.Date     `json:"expense_date" swaggertype:"string" format:"date" example:"2024-03-05"`
	Notes       string          `json:"notes" validate:"max=200" example:"Seed purchase"`
}

// ExpenseResponse represents an expense with its crop and category names
type ExpenseResponse struct {
	ID           uint            `json:"id" example:"9"`
	CropID       uint            `json:"crop_id" example:"5"`
	CropName     string          `json:"crop_name" example:"Wheat"`
	CategoryID   uint            `json:"category_id" example:"4"`
	CategoryName string          `json:"category_name" example:"Seeds"`
	Amount       decimal.Decimal `json:"amount" swaggertype:"string" example:"150.50"`
	ExpenseDate  models.Date     `json:"expense_date" swaggertype:"string" format:"date" example:"2024-03-05"`
	Notes        string          `json:"notes" example:"Seed purchase"`
	AuditResponse
}

func (s *ExpenseService) validateShape(req *ExpenseRequest) error {
	if err := validateRequest(s.validator, req); err != nil {
		return err
	}
	// amounts are stored with two decimals; check what will be written
	req.Amount = req.Amount.Round(2)
	if !req.Amount.IsPositive() {
		return apperrors.ErrAmountNotPositive
	}
	return requireDate("expense_date", req.ExpenseDate)
}

func (s *ExpenseService) validateReferences(ctx context.Context, tenantID uint, req *ExpenseRequest) error {
	if err := checkReference(ctx, s.cropRepo.Exists, tenantID, req.CropID, "crop_id", "crop"); err != nil {
		return err
	}
	return checkReference(ctx, s.categoryRepo.Exists, tenantID, req.CategoryID, "category_id", "expense category")
}

// Create records a new expense against a crop of the caller's tenant
func (s *ExpenseService) Create(ctx context.Context, caller auth.Identity, req *ExpenseRequest) (*ExpenseResponse, error) {
	if err := s.validateShape(req); err != nil {
		return nil, err
	}
	if err := s.validateReferences(ctx, caller.TenantID, req); err != nil {
		return nil, err
	}

	expense := &models.Expense{}
	applyExpenseRequest(expense, req)
	if err := s.repo.Create(ctx, caller.TenantID, caller.UserID, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	logger.WithContext(ctx).WithField("expense_id", expense.ID).Info("Expense created")
	return s.GetByID(ctx, caller, expense.ID)
}

// GetAll returns every expense of the caller's tenant with crop and category names
func (s *ExpenseService) GetAll(ctx context.Context, caller auth.Identity) ([]ExpenseResponse, error) {
	expenses, err := s.repo.ListDetailed(ctx, caller.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses: %w", err)
	}

	responses := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		responses[i] = *toExpenseResponse(&expenses[i])
	}
	return responses, nil
}

// GetByID retrieves an expense of the caller's tenant
func (s *ExpenseService) GetByID(ctx context.Context, caller auth.Identity, id uint) (*ExpenseResponse, error) {
	expense, err := s.repo.GetDetailed(ctx, caller.TenantID, id)
	if err != nil {
		return nil, storeError(err, apperrors.ErrExpenseNotFound, "get")
	}
	return toExpenseResponse(expense), nil
}

// Update overwrites the editable fields of an expense
func (s *ExpenseService) Update(ctx context.Context, caller auth.Identity, id uint, req *ExpenseRequest) (*ExpenseResponse, error) {
	if err := s.validateShape(req); err != nil {
		return nil, err
	}

	expense, err := s.repo.GetByID(ctx, caller.TenantID, id)
	if err != nil {
		return nil, storeError(err, apperrors.ErrExpenseNotFound, "get")
	}
	if err := s.validateReferences(ctx, caller.TenantID, req); err != nil {
		return nil, err
	}

	applyExpenseRequest(expense, req)
	if err := s.repo.Update(ctx, caller.TenantID, caller.UserID, expense); err != nil {
		return nil, storeError(err, apperrors.ErrExpenseNotFound, "update")
	}

	logger.WithContext(ctx).WithField("expense_id", id).Info("Expense updated")
	return s.GetByID(ctx, caller, id)
}

// Delete removes an expense
func (s *ExpenseService) Delete(ctx context.Context, caller auth.Identity, id uint) error {
	if err := s.repo.Delete(ctx, caller.TenantID, id); err != nil {
		return storeError(err, apperrors.ErrExpenseNotFound, "delete")
	}

	logger.WithContext(ctx).WithField("expense_id", id).Info("Expense deleted")
	return nil
}

// Export renders the caller's expense listing as an XLSX workbook
func (s *ExpenseService) Export(ctx context.Context, caller auth.Identity) ([]byte, error) {
	expenses, err := s.repo.ListDetailed(ctx, caller.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses: %w", err)
	}

	rows := make([][]interface{}, len(expenses))
	for i, e := range expenses {
		rows[i] = []interface{}{e.ID, e.ExpenseDate.String(), e.CropName, e.CategoryName, e.Amount.InexactFloat64(), e.Notes}
	}
	return renderWorkbook("Expenses", []string{"ID", "Date", "Crop", "Category", "Amount", "Notes"}, rows)
}

func applyExpenseRequest(expense *models.Expense, req *ExpenseRequest) {
	expense.CropID = req.CropID
	expense.CategoryID = req.CategoryID
	expense.Amount = req.Amount.Round(2)
	expense.ExpenseDate = req.ExpenseDate
	expense.Notes = req.Notes
}

func toExpenseResponse(expense *models.ExpenseDetail) *ExpenseResponse {
	return &ExpenseResponse{
		ID:            expense.ID,
		CropID:        expense.CropID,
		CropName:      expense.CropName,
		CategoryID:    expense.CategoryID,
		CategoryName:  expense.CategoryName,
		Amount:        expense.Amount,
		ExpenseDate:   expense.ExpenseDate,
		Notes:         expense.Notes,
		AuditResponse: auditOf(expense.TenantModel),
	}
}
