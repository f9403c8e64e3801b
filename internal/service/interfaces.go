package service

import (
	"context"

	"agrimanager-backend/internal/auth"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// FarmServiceInterface defines the interface for farm service
type FarmServiceInterface interface {
	Create(ctx context.Context, caller auth.Identity, req *FarmRequest) (*FarmResponse, error)
	GetAll(ctx context.Context, caller auth.Identity) ([]FarmResponse, error)
	GetByID(ctx context.Context, caller auth.Identity, id uint) (*FarmResponse, error)
	Update(ctx context.Context, caller auth.Identity, id uint, req *FarmRequest) (*FarmResponse, error)
	Delete(ctx context.Context, caller auth.Identity, id uint) error
}

// FieldServiceInterface defines the interface for field service
type FieldServiceInterface interface {
	Create(ctx context.Context, caller auth.Identity, req *FieldRequest) (*FieldResponse, error)
	GetAll(ctx context.Context, caller auth.Identity) ([]FieldResponse, error)
	GetByID(ctx context.Context, caller auth.Identity, id uint) (*FieldResponse, error)
	Update(ctx context.Context, caller auth.Identity, id uint, req *FieldRequest) (*FieldResponse, error)
	Delete(ctx context.Context, caller auth.Identity, id uint) error
}

// CropServiceInterface defines the interface for crop service
type CropServiceInterface interface {
	Create(ctx context.Context, caller auth.Identity, req *CropRequest) (*CropResponse, error)
	GetAll(ctx context.Context, caller auth.Identity) ([]CropResponse, error)
	GetByID(ctx context.Context, caller auth.Identity, id uint) (*CropResponse, error)
	Update(ctx context.Context, caller auth.Identity, id uint, req *CropRequest) (*CropResponse, error)
	Delete(ctx context.Context, caller auth.Identity, id uint) error
}

// CropStatusServiceInterface defines the interface for crop status service
type CropStatusServiceInterface interface {
	Create(ctx context.Context, caller auth.Identity, req *CropStatusRequest) (*CropStatusResponse, error)
	GetAll(ctx context.Context, caller auth.Identity) ([]CropStatusResponse, error)
	Dropdown(ctx context.Context, caller auth.Identity) ([]CropStatusOption, error)
	GetByID(ctx context.Context, caller auth.Identity, id uint) (*CropStatusResponse, error)
	Update(ctx context.Context, caller auth.Identity, id uint, req *CropStatusRequest) (*CropStatusResponse, error)
	Delete(ctx context.Context, caller auth.Identity, id uint) error
}

// ExpenseCategoryServiceInterface defines the interface for expense category service
type ExpenseCategoryServiceInterface interface {
	Create(ctx context.Context, caller auth.Identity, req *ExpenseCategoryRequest) (*ExpenseCategoryResponse, error)
	GetAll(ctx context.Context, caller auth.Identity) ([]ExpenseCategoryResponse, error)
	GetByID(ctx context.Context, caller auth.Identity, id uint) (*ExpenseCategoryResponse, error)
	Update(ctx context.Context, caller auth.Identity, id uint, req *ExpenseCategoryRequest) (*ExpenseCategoryResponse, error)
	Toggle(ctx context.Context, caller auth.Identity, id uint) (*ToggleResponse, error)
	Delete(ctx context.Context, caller auth.Identity, id uint) error
}

// ExpenseServiceInterface defines the interface for expense service
type ExpenseServiceInterface interface {
	Create(ctx context.Context, caller auth.Identity, req *ExpenseRequest) (*ExpenseResponse, error)
	GetAll(ctx context.Context, caller auth.Identity) ([]ExpenseResponse, error)
	GetByID(ctx context.Context, caller auth.Identity, id uint) (*ExpenseResponse, error)
	Update(ctx context.Context, caller auth.Identity, id uint, req *ExpenseRequest) (*ExpenseResponse, error)
	Delete(ctx context.Context, caller auth.Identity, id uint) error
	Export(ctx context.Context, caller auth.Identity) ([]byte, error)
}

// IncomeServiceInterface defines the interface for income service
type IncomeServiceInterface interface {
	Create(ctx context.Context, caller auth.Identity, req *IncomeRequest) (*IncomeResponse, error)
	GetAll(ctx context.Context, caller auth.Identity) ([]IncomeResponse, error)
	GetByID(ctx context.Context, caller auth.Identity, id uint) (*IncomeResponse, error)
	Update(ctx context.Context, caller auth.Identity, id uint, req *IncomeRequest) (*IncomeResponse, error)
	Delete(ctx context.Context, caller auth.Identity, id uint) error
	Export(ctx context.Context, caller auth.Identity) ([]byte, error)
}
