package models

// ExpenseCategory classifies expenses; inactive categories stay listed after the active ones
type ExpenseCategory struct {
	TenantModel
	Name     string `json:"name" gorm:"size:50;not null"`
	IsActive bool   `json:"is_active" gorm:"not null"`
}

// TableName returns the table name for ExpenseCategory
func (ExpenseCategory) TableName() string {
	return "expense_categories"
}
