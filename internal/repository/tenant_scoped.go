package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agrimanager-backend/internal/database/models"

	"gorm.io/gorm"
)

// ErrHasDependents is returned by Delete when other rows of the tenant still reference the record
var ErrHasDependents = errors.New("record is referenced by other records")

// Dependent names a column of another table that references a record by id
type Dependent struct {
	Table  string
	Column string
}

// Ordering used by List when an entity does not define its own
var orderByID = []string{"id ASC"}

// orderByActiveThenName lists active rows first, then by name; id breaks ties
var orderByActiveThenName = []string{"is_active DESC", "name ASC", "id ASC"}

// TenantRepository implements Create, List, GetByID, Update, Delete and Exists for a
// tenant-owned model. Every statement it issues is filtered on tenant_id.
type TenantRepository[T any, PT interface {
	*T
	models.TenantOwned
}] struct {
	db         *gorm.DB
	order      []string
	dependents []Dependent
}

func newTenantRepository[T any, PT interface {
	*T
	models.TenantOwned
}](db *gorm.DB, order []string, dependents ...Dependent) *TenantRepository[T, PT] {
	if len(order) == 0 {
		order = orderByID
	}
	return &TenantRepository[T, PT]{
		db:         db,
		order:      order,
		dependents: dependents,
	}
}

// Create stamps tenant and audit columns from the caller and inserts the record.
// The generated id is written back into entity.
func (r *TenantRepository[T, PT]) Create(ctx context.Context, tenantID, userID uint, entity *T) error {
	m := PT(entity).TenantFields()
	m.ID = 0
	m.TenantID = tenantID
	m.CreatedBy = userID
	m.CreatedAt = time.Now().UTC()
	m.ModifiedAt = nil
	m.ModifiedBy = nil

	return r.db.WithContext(ctx).Create(entity).Error
}

// List returns every record of the tenant in the repository's deterministic order
func (r *TenantRepository[T, PT]) List(ctx context.Context, tenantID uint) ([]T, error) {
	items := []T{}
	query := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID)
	for _, order := range r.order {
		query = query.Order(order)
	}
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID returns gorm.ErrRecordNotFound unless both id and tenant match
func (r *TenantRepository[T, PT]) GetByID(ctx context.Context, tenantID, id uint) (*T, error) {
	return r.find(r.db.WithContext(ctx), tenantID, id)
}

// Update overwrites the editable columns of an existing record of the tenant.
// Tenant and creation columns are kept from the stored row.
func (r *TenantRepository[T, PT]) Update(ctx context.Context, tenantID, userID uint, entity *T) error {
	m := PT(entity).TenantFields()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := r.find(tx, tenantID, m.ID)
		if err != nil {
			return err
		}
		stored := PT(current).TenantFields()

		now := time.Now().UTC()
		modifiedBy := userID
		m.TenantID = stored.TenantID
		m.CreatedAt = stored.CreatedAt
		m.CreatedBy = stored.CreatedBy
		m.ModifiedAt = &now
		m.ModifiedBy = &modifiedBy

		result := tx.Model(PT(current)).
			Where("tenant_id = ?", tenantID).
			Select("*").
			Updates(entity)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// Delete removes a record of the tenant permanently. It returns gorm.ErrRecordNotFound
// when absent and ErrHasDependents when any dependent row of the tenant references it.
func (r *TenantRepository[T, PT]) Delete(ctx context.Context, tenantID, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := r.find(tx, tenantID, id)
		if err != nil {
			return err
		}

		for _, dep := range r.dependents {
			var count int64
			if err := tx.Table(dep.Table).
				Where(dep.Column+" = ? AND tenant_id = ?", id, tenantID).
				Count(&count).Error; err != nil {
				return fmt.Errorf("count %s: %w", dep.Table, err)
			}
			if count > 0 {
				return fmt.Errorf("%w: %d row(s) in %s", ErrHasDependents, count, dep.Table)
			}
		}

		result := tx.Where("id = ? AND tenant_id = ?", id, tenantID).Delete(PT(current))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// Exists reports whether a record with id belongs to the tenant
func (r *TenantRepository[T, PT]) Exists(ctx context.Context, tenantID, id uint) (bool, error) {
	if id == 0 {
		return false, nil
	}
	var count int64
	err := r.db.WithContext(ctx).
		Model(PT(new(T))).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *TenantRepository[T, PT]) find(db *gorm.DB, tenantID, id uint) (*T, error) {
	var item T
	if err := db.Where("id = ? AND tenant_id = ?", id, tenantID).First(PT(&item)).Error; err != nil {
		return nil, err
	}
	return &item, nil
}
