package repository

import (
	"context"

	"agrimanager-backend/internal/database/models"

	"gorm.io/gorm"
)

// ExpenseCategoryRepository handles database operations for expense categories
type ExpenseCategoryRepository struct {
	*TenantRepository[models.ExpenseCategory, *models.ExpenseCategory]
}

// Ensure ExpenseCategoryRepository implements ExpenseCategoryRepositoryInterface
var _ ExpenseCategoryRepositoryInterface = (*ExpenseCategoryRepository)(nil)

// NewExpenseCategoryRepository creates a new expense category repository
func NewExpenseCategoryRepository(db *gorm.DB) *ExpenseCategoryRepository {
	return &ExpenseCategoryRepository{
		TenantRepository: newTenantRepository[models.ExpenseCategory](db, orderByActiveThenName,
			Dependent{Table: "expenses", Column: "category_id"},
		),
	}
}

// ExpenseRepository handles database operations for expenses
type ExpenseRepository struct {
	*TenantRepository[models.Expense, *models.Expense]
}

// Ensure ExpenseRepository implements ExpenseRepositoryInterface
var _ ExpenseRepositoryInterface = (*ExpenseRepository)(nil)

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{
		TenantRepository: newTenantRepository[models.Expense](db, orderByID),
	}
}

// ListDetailed returns the tenant's expenses with crop and category names
func (r *ExpenseRepository) ListDetailed(ctx context.Context, tenantID uint) ([]models.ExpenseDetail, error) {
	return listJoined[models.ExpenseDetail](ctx, r.db, expenseJoins, tenantID)
}

// GetDetailed returns one expense of the tenant with crop and category names
func (r *ExpenseRepository) GetDetailed(ctx context.Context, tenantID, id uint) (*models.ExpenseDetail, error) {
	return getJoined[models.ExpenseDetail](ctx, r.db, expenseJoins, tenantID, id)
}

// IncomeRepository handles database operations for income records
type IncomeRepository struct {
	*TenantRepository[models.Income, *models.Income]
}

// Ensure IncomeRepository implements IncomeRepositoryInterface
var _ IncomeRepositoryInterface = (*IncomeRepository)(nil)

// NewIncomeRepository creates a new income repository
func NewIncomeRepository(db *gorm.DB) *IncomeRepository {
	return &IncomeRepository{
		TenantRepository: newTenantRepository[models.Income](db, orderByID),
	}
}

// ListDetailed returns the tenant's income records with crop names
func (r *IncomeRepository) ListDetailed(ctx context.Context, tenantID uint) ([]models.IncomeDetail, error) {
	return listJoined[models.IncomeDetail](ctx, r.db, incomeJoins, tenantID)
}

// GetDetailed returns one income record of the tenant with its crop name
func (r *IncomeRepository) GetDetailed(ctx context.Context, tenantID, id uint) (*models.IncomeDetail, error) {
	return getJoined[models.IncomeDetail](ctx, r.db, incomeJoins, tenantID, id)
}
