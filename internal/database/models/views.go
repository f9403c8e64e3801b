package models

// Denormalised read shapes produced by the tenant-filtered joins.
// A name is empty when the referenced row is missing or owned by another tenant.

type FieldDetail struct {
	Field
	FarmName string `json:"farm_name" gorm:"column:farm_name"`
}

type CropDetail struct {
	Crop
	FarmName   string `json:"farm_name" gorm:"column:farm_name"`
	FieldName  string `json:"field_name" gorm:"column:field_name"`
	StatusName string `json:"status_name" gorm:"column:status_name"`
}

type ExpenseDetail struct {
	Expense
	CropName     string `json:"crop_name" gorm:"column:crop_name"`
	CategoryName string `json:"category_name" gorm:"column:category_name"`
}

type IncomeDetail struct {
	Income
	CropName string `json:"crop_name" gorm:"column:crop_name"`
}
