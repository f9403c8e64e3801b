package models

import "time"

// Tenant is a customer account; every other record is partitioned by its id
type Tenant struct {
	ID         uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name       string     `json:"name" gorm:"size:100;not null"`
	Email      string     `json:"email" gorm:"size:100"`
	Phone      string     `json:"phone" gorm:"size:20"`
	Address    string     `json:"address" gorm:"size:200"`
	IsActive   bool       `json:"is_active" gorm:"not null"`
	CreatedAt  time.Time  `json:"created_at" gorm:"not null"`
	CreatedBy  uint       `json:"created_by"`
	ModifiedAt *time.Time `json:"modified_at,omitempty"`
	ModifiedBy *uint      `json:"modified_by,omitempty"`
}

// TableName returns the table name for Tenant
func (Tenant) TableName() string {
	return "tenants"
}
