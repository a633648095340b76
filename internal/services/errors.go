package services

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinel errors surfaced to the handler layer, which maps them to HTTP
// status codes. Everything else is treated as an internal error.
var (
	ErrNotFound           = errors.New("record not found")
	ErrConflict           = errors.New("record already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// translateNotFound converts gorm's record-not-found into the service-level
// sentinel so handlers never depend on gorm.
func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
