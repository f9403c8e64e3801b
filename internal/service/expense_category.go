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

// ExpenseCategoryService provides expense category business logic
type ExpenseCategoryService struct {
	repo      repository.ExpenseCategoryRepositoryInterface
	validator *validator.Validate
}

// Ensure ExpenseCategoryService implements ExpenseCategoryServiceInterface
var _ ExpenseCategoryServiceInterface = (*ExpenseCategoryService)(nil)

// NewExpenseCategoryService creates a new ExpenseCategoryService
func NewExpenseCategoryService(repo repository.ExpenseCategoryRepositoryInterface, validator *validator.Validate) *ExpenseCategoryService {
	return &ExpenseCategoryService{
		repo:      repo,
		validator: validator,
	}
}

// ExpenseCategoryRequest represents the request to create or update an expense category.
// New categories are always active; IsActive only applies to updates.
type ExpenseCategoryRequest struct {
	Name     string `json:"name" validate:"required,max=50" example:"Seeds"`
	IsActive *bool  `json:"is_active,omitempty" example:"true"`
}

// ExpenseCategoryResponse represents a single expense category in API responses
type ExpenseCategoryResponse struct {
	ID       uint   `json:"id" example:"4"`
	Name     string `json:"name" example:"Seeds"`
	IsActive bool   `json:"is_active" example:"true"`
	AuditResponse
}

// ToggleResponse reports the activity of a category after a toggle
type ToggleResponse struct {
	ID       uint `json:"id" example:"4"`
	IsActive bool `json:"is_active" example:"false"`
}

func (s *ExpenseCategoryService) validate(req *ExpenseCategoryRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	return validateRequest(s.validator, req)
}

// Create creates a new active category of the caller's tenant
func (s *ExpenseCategoryService) Create(ctx context.Context, caller auth.Identity, req *ExpenseCategoryRequest) (*ExpenseCategoryResponse, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	category := &models.ExpenseCategory{
		Name:     req.Name,
		IsActive: true,
	}
	if err := s.repo.Create(ctx, caller.TenantID, caller.UserID, category); err != nil {
		return nil, fmt.Errorf("failed to create expense category: %w", err)
	}

	logger.WithContext(ctx).WithField("category_id", category.ID).Info("Expense category created")
	return toExpenseCategoryResponse(category), nil
}

// GetAll returns every category of the caller's tenant, active ones first
func (s *ExpenseCategoryService) GetAll(ctx context.Context, caller auth.Identity) ([]ExpenseCategoryResponse, error) {
	categories, err := s.repo.List(ctx, caller.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense categories: %w", err)
	}

	responses := make([]ExpenseCategoryResponse, len(categories))
	for i := range categories {
		responses[i] = *toExpenseCategoryResponse(&categories[i])
	}
	return responses, nil
}

// GetByID retrieves a category of the caller's tenant
func (s *ExpenseCategoryService) GetByID(ctx context.Context, caller auth.Identity, id uint) (*ExpenseCategoryResponse, error) {
	category, err := s.repo.GetByID(ctx, caller.TenantID, id)
	if err != nil {
		return nil, storeError(err, apperrors.ErrExpenseCategoryNotFound, "get")
	}
	return toExpenseCategoryResponse(category), nil
}

// Update renames a category and optionally changes whether it is active
func (s *ExpenseCategoryService) Update(ctx context.Context, caller auth.Identity, id uint, req *ExpenseCategoryRequest) (*ExpenseCategoryResponse, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	category, err := s.repo.GetByID(ctx, caller.TenantID, id)
	if err != nil {
		return nil, storeError(err, apperrors.ErrExpenseCategoryNotFound, "get")
	}

	category.Name = req.Name
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	if err := s.repo.Update(ctx, caller.TenantID, caller.UserID, category); err != nil {
		return nil, storeError(err, apperrors.ErrExpenseCategoryNotFound, "update")
	}

	logger.WithContext(ctx).WithField("category_id", id).Info("Expense category updated")
	return toExpenseCategoryResponse(category), nil
}

// Toggle flips whether a category is active
func (s *ExpenseCategoryService) Toggle(ctx context.Context, caller auth.Identity, id uint) (*ToggleResponse, error) {
	category, err := s.repo.GetByID(ctx, caller.TenantID, id)
	if err != nil {
		return nil, storeError(err, apperrors.ErrExpenseCategoryNotFound, "get")
	}

	category.IsActive = !category.IsActive
	if err := s.repo.Update(ctx, caller.TenantID, caller.UserID, category); err != nil {
		return nil, storeError(err, apperrors.ErrExpenseCategoryNotFound, "update")
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"category_id": id,
		"is_active":   category.IsActive,
	}).Info("Expense category toggled")
	return &ToggleResponse{ID: category.ID, IsActive: category.IsActive}, nil
}

// Delete removes a category that no expense uses
func (s *ExpenseCategoryService) Delete(ctx context.Context, caller auth.Identity, id uint) error {
	if err := s.repo.Delete(ctx, caller.TenantID, id); err != nil {
		return storeError(err, apperrors.ErrExpenseCategoryNotFound, "delete")
	}

	logger.WithContext(ctx).WithField("category_id", id).Info("Expense category deleted")
	return nil
}

func toExpenseCategoryResponse(category *models.ExpenseCategory) *ExpenseCategoryResponse {
	return &ExpenseCategoryResponse{
		ID:            category.ID,
		Name:          category.Name,
		IsActive:      category.IsActive,
		AuditResponse: auditOf(category.TenantModel),
	}
}
