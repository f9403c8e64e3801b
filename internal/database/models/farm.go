package models

// Farm is the root of a tenant's land hierarchy
type Farm struct {
	TenantModel
	Name        string `json:"name" gorm:"size:50;not null"`
	Location    string `json:"location" gorm:"size:50"`
	TotalFields *int   `json:"total_fields,omitempty"`
	Notes       string `json:"notes" gorm:"size:200"`
}

// TableName returns the table name for Farm
func (Farm) TableName() string {
	return "farms"
}

// Field is a plot that belongs to a farm of the same tenant
type Field struct {
	TenantModel
	FarmID uint   `json:"farm_id" gorm:"not null;index"`
	Name   string `json:"name" gorm:"size:50;not null"`
	Area   string `json:"area" gorm:"size:200"`
	Notes  string `json:"notes" gorm:"size:200"`
}

// TableName returns the table name for Field
func (Field) TableName() string {
	return "fields"
}
