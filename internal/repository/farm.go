package repository

import (
	"context"

	"agrimanager-backend/internal/database/models"

	"gorm.io/gorm"
)

// FarmRepository handles database operations for farms
type FarmRepository struct {
	*TenantRepository[models.Farm, *models.Farm]
}

// Ensure FarmRepository implements FarmRepositoryInterface
var _ FarmRepositoryInterface = (*FarmRepository)(nil)

// NewFarmRepository creates a new farm repository
func NewFarmRepository(db *gorm.DB) *FarmRepository {
	return &FarmRepository{
		TenantRepository: newTenantRepository[models.Farm](db, orderByID,
			Dependent{Table: "fields", Column: "farm_id"},
			Dependent{Table: "crops", Column: "farm_id"},
		),
	}
}

// FieldRepository handles database operations for fields
type FieldRepository struct {
	*TenantRepository[models.Field, *models.Field]
}

// Ensure FieldRepository implements FieldRepositoryInterface
var _ FieldRepositoryInterface = (*FieldRepository)(nil)

// NewFieldRepository creates a new field repository
func NewFieldRepository(db *gorm.DB) *FieldRepository {
	return &FieldRepository{
		TenantRepository: newTenantRepository[models.Field](db, orderByID,
			Dependent{Table: "crops", Column: "field_id"},
		),
	}
}

// ListDetailed returns the tenant's fields with their farm name
func (r *FieldRepository) ListDetailed(ctx context.Context, tenantID uint) ([]models.FieldDetail, error) {
	return listJoined[models.FieldDetail](ctx, r.db, fieldJoins, tenantID)
}

// GetDetailed returns one field of the tenant with its farm name
func (r *FieldRepository) GetDetailed(ctx context.Context, tenantID, id uint) (*models.FieldDetail, error) {
	return getJoined[models.FieldDetail](ctx, r.db, fieldJoins, tenantID, id)
}
