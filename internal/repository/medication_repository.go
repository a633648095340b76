package repository

import (
	"utibu_health/internal/models"

	"gorm.io/gorm"
)

type MedicationRepository interface {
	Create(medication *models.Medication) error
	GetByID(id uint) (*models.Medication, error)
	GetByName(name string) (*models.Medication, error)
	GetAll() ([]models.Medication, error)
	Update(medication *models.Medication) error
	Delete(id uint) error
}

type medicationRepository struct {
	db *gorm.DB
}

func NewMedicationRepository(db *gorm.DB) MedicationRepository {
	return &medicationRepository{db: db}
}

func (r *medicationRepository) Create(medication *models.Medication) error {
	return r.db.Create(medication).Error
}

func (r *medicationRepository) GetByID(id uint) (*models.Medication, error) {
	var medication models.Medication
	err := r.db.First(&medication, id).Error
	if err != nil {
		return nil, err
	}
	return &medication, nil
}

func (r *medicationRepository) GetByName(name string) (*models.Medication, error) {
	var medication models.Medication
	err := r.db.Where("name = ?", name).First(&medication).Error
	if err != nil {
		return nil, err
	}
	return &medication, nil
}

func (r *medicationRepository) GetAll() ([]models.Medication, error) {
	var medications []models.Medication
	err := r.db.Find(&medications).Error
	return medications, err
}

func (r *medicationRepository) Update(medication *models.Medication) error {
	return r.db.Save(medication).Error
}

func (r *medicationRepository) Delete(id uint) error {
	return r.db.Delete(&models.Medication{}, id).Error
}
