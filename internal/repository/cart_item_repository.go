package repository

import (
	"utibu_health/internal/models"

	"gorm.io/gorm"
)

type CartItemRepository interface {
	Create(item *models.CartItem) error
	GetByID(id uint) (*models.CartItem, error)
	GetByCustomerAndMedication(customerID, medicationID uint) (*models.CartItem, error)
	GetByCustomerID(customerID uint) ([]models.CartItem, error)
	GetByMedicationID(medicationID uint) ([]models.CartItem, error)
	GetAll() ([]models.CartItem, error)
	Update(item *models.CartItem) error
	Delete(id uint) error
}

type cartItemRepository struct {
	db *gorm.DB
}

func NewCartItemRepository(db *gorm.DB) CartItemRepository {
	return &cartItemRepository{db: db}
}

func (r *cartItemRepository) Create(item *models.CartItem) error {
	return r.db.Create(item).Error
}

func (r *cartItemRepository) GetByID(id uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartItemRepository) GetByCustomerAndMedication(customerID, medicationID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Where("customer_id = ? AND medication_id = ?", customerID, medicationID).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartItemRepository) GetByCustomerID(customerID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.db.Where("customer_id = ?", customerID).Find(&items).Error
	return items, err
}

func (r *cartItemRepository) GetByMedicationID(medicationID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.db.Where("medication_id = ?", medicationID).Find(&items).Error
	return items, err
}

func (r *cartItemRepository) GetAll() ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.db.Find(&items).Error
	return items, err
}

func (r *cartItemRepository) Update(item *models.CartItem) error {
	return r.db.Save(item).Error
}

func (r *cartItemRepository) Delete(id uint) error {
	return r.db.Delete(&models.CartItem{}, id).Error
}
