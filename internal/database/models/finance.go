package models

import "github.com/shopspring/decimal"

// Expense is money spent on a crop
type Expense struct {
	TenantModel
	CropID      uint            `json:"crop_id" gorm:"not null;index"`
	CategoryID  uint            `json:"category_id" gorm:"not null;index"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	ExpenseDate Date            `json:"expense_date" gorm:"not null"`
	Notes       string          `json:"notes" gorm:"size:200"`
}

// TableName returns the table name for Expense
func (Expense) TableName() string {
	return "expenses"
}

// Income is a sale of a crop's produce. TotalAmount is recorded as supplied and
// is not required to equal Quantity x PricePerUnit.
type Income struct {
	TenantModel
	CropID       uint             `json:"crop_id" gorm:"not null;index"`
	Quantity     *decimal.Decimal `json:"quantity,omitempty" gorm:"type:decimal(12,2)"`
	PricePerUnit *decimal.Decimal `json:"price_per_unit,omitempty" gorm:"type:decimal(12,2)"`
	TotalAmount  decimal.Decimal  `json:"total_amount" gorm:"type:decimal(14,2);not null"`
	SaleDate     Date             `json:"sale_date" gorm:"not null"`
	Notes        string           `json:"notes" gorm:"size:200"`
}

// TableName returns the table name for Income
func (Income) TableName() string {
	return "incomes"
}
