package repository

import (
	"utibu_health/internal/models"

	"gorm.io/gorm"
)

type CustomerRepository interface {
	Create(customer *models.Customer) error
	GetByID(id uint) (*models.Customer, error)
	GetByUsername(username string) (*models.Customer, error)
	ExistsWithUsernameOrEmail(username, email string) (bool, error)
	ExistsOtherWithUsernameOrEmail(id uint, username, email string) (bool, error)
	GetAll() ([]models.Customer, error)
	Update(customer *models.Customer) error
	Delete(id uint) error
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

func (r *customerRepository) GetByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.First(&customer, id).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) GetByUsername(username string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.Where("username = ?", username).First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) ExistsWithUsernameOrEmail(username, email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Customer{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	return count > 0, err
}

func (r *customerRepository) ExistsOtherWithUsernameOrEmail(id uint, username, email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Customer{}).
		Where("(username = ? OR email = ?) AND id <> ?", username, email, id).
		Count(&count).Error
	return count > 0, err
}

func (r *customerRepository) GetAll() ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.Find(&customers).Error
	return customers, err
}

func (r *customerRepository) Update(customer *models.Customer) error {
	return r.db.Save(customer).Error
}

func (r *customerRepository) Delete(id uint) error {
	return r.db.Delete(&models.Customer{}, id).Error
}
