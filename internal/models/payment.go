package models

type Payment struct {
	ID            uint     `json:"PaymentID" gorm:"primaryKey"`
	OrderID       uint     `json:"OrderID" gorm:"index;not null"`
	PaymentDate   DateTime `json:"PaymentDate" gorm:"not null"`
	AmountPaid    float64  `json:"AmountPaid" gorm:"not null"`
	PaymentMethod string   `json:"PaymentMethod" gorm:"not null"`
}

// PaymentInput is used for both create and full-replace update.
type PaymentInput struct {
	OrderID       *uint     `json:"OrderID" binding:"required"`
	PaymentDate   *DateTime `json:"PaymentDate" binding:"required"`
	AmountPaid    *float64  `json:"AmountPaid" binding:"required"`
	PaymentMethod *string   `json:"PaymentMethod" binding:"required"`
}
