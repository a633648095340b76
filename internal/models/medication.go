package models

type Medication struct {
	ID           uint    `json:"MedicationID" gorm:"primaryKey"`
	Name         string  `json:"Name" gorm:"uniqueIndex;not null"`
	Description  string  `json:"Description" gorm:"type:text"`
	StockLevel   int     `json:"StockLevel" gorm:"not null"`
	PricePerUnit float64 `json:"PricePerUnit" gorm:"not null"`
}

// MedicationInput is used for both create and full-replace update: every
// field must be present, absence is a validation error.
type MedicationInput struct {
	Name         *string  `json:"Name" binding:"required"`
	Description  *string  `json:"Description" binding:"required"`
	StockLevel   *int     `json:"StockLevel" binding:"required"`
	PricePerUnit *float64 `json:"PricePerUnit" binding:"required"`
}
