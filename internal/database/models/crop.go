package models

// CropStatus is a per-tenant lifecycle state a crop can be in
type CropStatus struct {
	TenantModel
	Name     string `json:"name" gorm:"size:50;not null"`
	IsActive bool   `json:"is_active" gorm:"not null"`
}

// TableName returns the table name for CropStatus
func (CropStatus) TableName() string {
	return "crop_statuses"
}

// Crop is a planting on a field
type Crop struct {
	TenantModel
	FarmID          uint   `json:"farm_id" gorm:"not null;index"`
	FieldID         uint   `json:"field_id" gorm:"not null;index"`
	StatusID        uint   `json:"status_id" gorm:"not null;index"`
	Name            string `json:"name" gorm:"size:50;not null"`
	Season          string `json:"season" gorm:"size:50"`
	StartDate       Date   `json:"start_date" gorm:"not null"`
	ExpectedEndDate *Date  `json:"expected_end_date,omitempty"`
	ExpectedYield   string `json:"expected_yield" gorm:"size:100"`
}

// TableName returns the table name for Crop
func (Crop) TableName() string {
	return "crops"
}
