package repository

import (
	"context"

	"agrimanager-backend/internal/database/models"

	"gorm.io/gorm"
)

// CropRepository handles database operations for crops
type CropRepository struct {
	*TenantRepository[models.Crop, *models.Crop]
}

// Ensure CropRepository implements CropRepositoryInterface
var _ CropRepositoryInterface = (*CropRepository)(nil)

// NewCropRepository creates a new crop repository
func NewCropRepository(db *gorm.DB) *CropRepository {
	return &CropRepository{
		TenantRepository: newTenantRepository[models.Crop](db, orderByID,
			Dependent{Table: "expenses", Column: "crop_id"},
			Dependent{Table: "incomes", Column: "crop_id"},
		),
	}
}

// ListDetailed returns the tenant's crops with farm, field and status names
func (r *CropRepository) ListDetailed(ctx context.Context, tenantID uint) ([]models.CropDetail, error) {
	return listJoined[models.CropDetail](ctx, r.db, cropJoins, tenantID)
}

// GetDetailed returns one crop of the tenant with farm, field and status names
func (r *CropRepository) GetDetailed(ctx context.Context, tenantID, id uint) (*models.CropDetail, error) {
	return getJoined[models.CropDetail](ctx, r.db, cropJoins, tenantID, id)
}

// CropStatusRepository handles database operations for crop statuses
type CropStatusRepository struct {
	*TenantRepository[models.CropStatus, *models.CropStatus]
}

// Ensure CropStatusRepository implements CropStatusRepositoryInterface
var _ CropStatusRepositoryInterface = (*CropStatusRepository)(nil)

// NewCropStatusRepository creates a new crop status repository
func NewCropStatusRepository(db *gorm.DB) *CropStatusRepository {
	return &CropStatusRepository{
		TenantRepository: newTenantRepository[models.CropStatus](db, orderByActiveThenName,
			Dependent{Table: "crops", Column: "status_id"},
		),
	}
}

// ListActive returns the tenant's active statuses ordered by id
func (r *CropStatusRepository) ListActive(ctx context.Context, tenantID uint) ([]models.CropStatus, error) {
	statuses := []models.CropStatus{}
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND is_active = ?", tenantID, true).
		Order("id ASC").
		Find(&statuses).Error
	if err != nil {
		return nil, err
	}
	return statuses, nil
}
