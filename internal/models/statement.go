package models

type Statement struct {
	ID            uint     `json:"StatementID" gorm:"primaryKey"`
	CustomerID    uint     `json:"CustomerID" gorm:"index;not null"`
	StatementDate DateTime `json:"StatementDate" gorm:"not null"`
	AmountDue     float64  `json:"AmountDue" gorm:"not null"`
	PaymentStatus string   `json:"PaymentStatus" gorm:"not null"`
}

// StatementInput is used for both create and full-replace update.
type StatementInput struct {
	CustomerID    *uint     `json:"CustomerID" binding:"required"`
	StatementDate *DateTime `json:"StatementDate" binding:"required"`
	AmountDue     *float64  `json:"AmountDue" binding:"required"`
	PaymentStatus *string   `json:"PaymentStatus" binding:"required"`
}
