package models

type CartItem struct {
	ID           uint `json:"CartItemID" gorm:"primaryKey"`
	CustomerID   uint `json:"CustomerID" gorm:"index:idx_cart_customer_medication,unique;not null"`
	MedicationID uint `json:"MedicationID" gorm:"index:idx_cart_customer_medication,unique;not null"`
	Quantity     int  `json:"Quantity" gorm:"not null"`
}

type CartItemInput struct {
	CustomerID   *uint `json:"customer_id" binding:"required"`
	MedicationID *uint `json:"medication_id" binding:"required"`
	Quantity     *int  `json:"quantity" binding:"required"`
}

type CartItemQuantityUpdate struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// CartLine is the computed cart view: each line joined to its medication with
// the subtotal derived from the current price, never stored.
type CartLine struct {
	CartItemID     uint    `json:"CartItemID"`
	MedicationID   uint    `json:"MedicationID"`
	MedicationName string  `json:"MedicationName"`
	Quantity       int     `json:"Quantity"`
	Subtotal       float64 `json:"Subtotal"`
}
