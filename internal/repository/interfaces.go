package repository

import (
	"context"

	"agrimanager-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TenantScopedRepository is the data access contract shared by every tenant-owned entity.
// tenantID always comes from the authenticated caller.
type TenantScopedRepository[T any] interface {
	Create(ctx context.Context, tenantID, userID uint, entity *T) error
	List(ctx context.Context, tenantID uint) ([]T, error)
	GetByID(ctx context.Context, tenantID, id uint) (*T, error)
	Update(ctx context.Context, tenantID, userID uint, entity *T) error
	Delete(ctx context.Context, tenantID, id uint) error
	Exists(ctx context.Context, tenantID, id uint) (bool, error)
}

// FarmRepositoryInterface defines the interface for farm repository operations
type FarmRepositoryInterface interface {
	TenantScopedRepository[models.Farm]
}

// FieldRepositoryInterface defines the interface for field repository operations
type FieldRepositoryInterface interface {
	TenantScopedRepository[models.Field]
	ListDetailed(ctx context.Context, tenantID uint) ([]models.FieldDetail, error)
	GetDetailed(ctx context.Context, tenantID, id uint) (*models.FieldDetail, error)
}

// CropRepositoryInterface defines the interface for crop repository operations
type CropRepositoryInterface interface {
	TenantScopedRepository[models.Crop]
	ListDetailed(ctx context.Context, tenantID uint) ([]models.CropDetail, error)
	GetDetailed(ctx context.Context, tenantID, id uint) (*models.CropDetail, error)
}

// CropStatusRepositoryInterface defines the interface for crop status repository operations
type CropStatusRepositoryInterface interface {
	TenantScopedRepository[models.CropStatus]
	ListActive(ctx context.Context, tenantID uint) ([]models.CropStatus, error)
}

// ExpenseCategoryRepositoryInterface defines the interface for expense category repository operations
type ExpenseCategoryRepositoryInterface interface {
	TenantScopedRepository[models.ExpenseCategory]
}

// ExpenseRepositoryInterface defines the interface for expense repository operations
type ExpenseRepositoryInterface interface {
	TenantScopedRepository[models.Expense]
	ListDetailed(ctx context.Context, tenantID uint) ([]models.ExpenseDetail, error)
	GetDetailed(ctx context.Context, tenantID, id uint) (*models.ExpenseDetail, error)
}

// IncomeRepositoryInterface defines the interface for income repository operations
type IncomeRepositoryInterface interface {
	TenantScopedRepository[models.Income]
	ListDetailed(ctx context.Context, tenantID uint) ([]models.IncomeDetail, error)
	GetDetailed(ctx context.Context, tenantID, id uint) (*models.IncomeDetail, error)
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetActiveByUsername(ctx context.Context, tenantID uint, username string) (*models.User, error)
}
