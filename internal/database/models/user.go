package models

import "time"

// User is a login account. Usernames are unique per tenant, not globally.
type User struct {
	ID           uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	TenantID     uint       `json:"tenant_id" gorm:"not null;uniqueIndex:idx_users_tenant_username"`
	Username     string     `json:"username" gorm:"size:50;not null;uniqueIndex:idx_users_tenant_username"`
	PasswordHash string     `json:"-" gorm:"size:100;not null"`
	FirstName    string     `json:"first_name" gorm:"size:50"`
	LastName     string     `json:"last_name" gorm:"size:50"`
	Email        string     `json:"email" gorm:"size:100"`
	Phone        string     `json:"phone" gorm:"size:20"`
	Address      string     `json:"address" gorm:"size:200"`
	IsActive     bool       `json:"is_active" gorm:"not null"`
	CreatedAt    time.Time  `json:"created_at" gorm:"not null"`
	CreatedBy    uint       `json:"created_by"`
	ModifiedAt   *time.Time `json:"modified_at,omitempty"`
	ModifiedBy   *uint      `json:"modified_by,omitempty"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
