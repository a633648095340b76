package repository

import (
	"utibu_health/internal/models"

	"gorm.io/gorm"
)

type StatementRepository interface {
	Create(statement *models.Statement) error
	GetByID(id uint) (*models.Statement, error)
	GetAll() ([]models.Statement, error)
	Update(statement *models.Statement) error
	Delete(id uint) error
}

type statementRepository struct {
	db *gorm.DB
}

func NewStatementRepository(db *gorm.DB) StatementRepository {
	return &statementRepository{db: db}
}

func (r *statementRepository) Create(statement *models.Statement) error {
	return r.db.Create(statement).Error
}

func (r *statementRepository) GetByID(id uint) (*models.Statement, error) {
	var statement models.Statement
	err := r.db.First(&statement, id).Error
	if err != nil {
		return nil, err
	}
	return &statement, nil
}

func (r *statementRepository) GetAll() ([]models.Statement, error) {
	var statements []models.Statement
	err := r.db.Find(&statements).Error
	return statements, err
}

func (r *statementRepository) Update(statement *models.Statement) error {
	return r.db.Save(statement).Error
}

func (r *statementRepository) Delete(id uint) error {
	return r.db.Delete(&models.Statement{}, id).Error
}
