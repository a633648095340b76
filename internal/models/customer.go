package models

type Customer struct {
	ID           uint   `json:"CustomerID" gorm:"primaryKey"`
	FirstName    string `json:"FirstName" gorm:"not null"`
	LastName     string `json:"LastName" gorm:"not null"`
	Email        string `json:"Email" gorm:"uniqueIndex;not null"`
	Phone        string `json:"Phone" gorm:"not null"`
	Address      string `json:"Address"`
	Username     string `json:"Username" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"not null"`
}

// SignupRequest is the customer registration payload. Address is the only
// optional field; the plaintext password is hashed before storage and never
// persisted.
type SignupRequest struct {
	FirstName string `json:"FirstName" binding:"required"`
	LastName  string `json:"LastName" binding:"required"`
	Email     string `json:"Email" binding:"required"`
	Phone     string `json:"Phone" binding:"required"`
	Address   string `json:"Address"`
	Username  string `json:"Username" binding:"required"`
	Password  string `json:"Password" binding:"required"`
}

// CustomerUpdate carries a partial update: only non-nil fields are applied.
// A supplied Password is re-hashed.
type CustomerUpdate struct {
	FirstName *string `json:"FirstName"`
	LastName  *string `json:"LastName"`
	Email     *string `json:"Email"`
	Phone     *string `json:"Phone"`
	Address   *string `json:"Address"`
	Username  *string `json:"Username"`
	Password  *string `json:"Password"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
