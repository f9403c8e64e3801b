package repository

import (
	"context"

	"agrimanager-backend/internal/database/models"

	"gorm.io/gorm"
)

// UserRepository handles database operations for login accounts
type UserRepository struct {
	db *gorm.DB
}

// Ensure UserRepository implements UserRepositoryInterface
var _ UserRepositoryInterface = (*UserRepository)(nil)

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// GetActiveByUsername retrieves an active user of an active tenant
func (r *UserRepository) GetActiveByUsername(ctx context.Context, tenantID uint, username string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Joins("JOIN tenants ON tenants.id = users.tenant_id").
		Where("users.tenant_id = ? AND users.username = ?", tenantID, username).
		Where("users.is_active = ? AND tenants.is_active = ?", true, true).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// TenantAccountRepository handles database operations for tenant accounts
type TenantAccountRepository struct {
	db *gorm.DB
}

// NewTenantAccountRepository creates a new tenant repository
func NewTenantAccountRepository(db *gorm.DB) *TenantAccountRepository {
	return &TenantAccountRepository{db: db}
}

// Create creates a new tenant
func (r *TenantAccountRepository) Create(ctx context.Context, tenant *models.Tenant) error {
	return r.db.WithContext(ctx).Create(tenant).Error
}

// GetByID retrieves a tenant by id
func (r *TenantAccountRepository) GetByID(ctx context.Context, id uint) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := r.db.WithContext(ctx).First(&tenant, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}
