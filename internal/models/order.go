package models

type Order struct {
	ID          uint     `json:"OrderID" gorm:"primaryKey"`
	CustomerID  uint     `json:"CustomerID" gorm:"index;not null"`
	OrderDate   DateTime `json:"OrderDate" gorm:"not null"`
	Status      string   `json:"Status" gorm:"not null"`
	TotalAmount float64  `json:"TotalAmount" gorm:"not null"`
}

// OrderInput is used for both create and full-replace update. Status is an
// opaque string with no state machine behind it; TotalAmount is stored as
// supplied, it is not recomputed from the order's items.
type OrderInput struct {
	CustomerID  *uint     `json:"CustomerID" binding:"required"`
	OrderDate   *DateTime `json:"OrderDate" binding:"required"`
	Status      *string   `json:"Status" binding:"required"`
	TotalAmount *float64  `json:"TotalAmount" binding:"required"`
}
