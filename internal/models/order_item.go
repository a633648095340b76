package models

type OrderItem struct {
	ID           uint    `json:"OrderItemID" gorm:"primaryKey"`
	OrderID      uint    `json:"OrderID" gorm:"index;not null"`
	MedicationID uint    `json:"MedicationID" gorm:"index;not null"`
	Quantity     int     `json:"Quantity" gorm:"not null"`
	Subtotal     float64 `json:"Subtotal" gorm:"not null"`
}

// OrderItemInput is used for both create and full-replace update. Subtotal is
// stored as supplied, not derived from Quantity and the medication price,
// unlike the cart view, which always computes it.
type OrderItemInput struct {
	OrderID      *uint    `json:"OrderID" binding:"required"`
	MedicationID *uint    `json:"MedicationID" binding:"required"`
	Quantity     *int     `json:"Quantity" binding:"required"`
	Subtotal     *float64 `json:"Subtotal" binding:"required"`
}
