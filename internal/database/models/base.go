package models

import (
	"time"
)

// TenantModel provides the identity, ownership and audit columns shared by every tenant-owned record
type TenantModel struct {
	ID         uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	TenantID   uint       `json:"-" gorm:"not null;index"`
	CreatedAt  time.Time  `json:"created_at" gorm:"not null"`
	CreatedBy  uint       `json:"created_by" gorm:"not null"`
	ModifiedAt *time.Time `json:"modified_at,omitempty"`
	ModifiedBy *uint      `json:"modified_by,omitempty"`
}

// TenantFields exposes the embedded ownership columns to generic repositories
func (m *TenantModel) TenantFields() *TenantModel {
	return m
}

// TenantOwned is implemented by every record partitioned by tenant
type TenantOwned interface {
	TenantFields() *TenantModel
	TableName() string
}

// All returns every model managed by the schema, in migration order
func All() []interface{} {
	return []interface{}{
		&Tenant{},
		&User{},
		&Farm{},
		&Field{},
		&CropStatus{},
		&Crop{},
		&ExpenseCategory{},
		&Expense{},
		&Income{},
	}
}
