package services

import (
	"utibu_health/internal/models"
	"utibu_health/internal/repository"
)

type StatementService interface {
	CreateStatement(input *models.StatementInput) (*models.Statement, error)
	GetStatementByID(id uint) (*models.Statement, error)
	GetAllStatements() ([]models.Statement, error)
	UpdateStatement(id uint, input *models.StatementInput) (*models.Statement, error)
	DeleteStatement(id uint) error
}

type statementService struct {
	statementRepo repository.StatementRepository
}

func NewStatementService(statementRepo repository.StatementRepository) StatementService {
	return &statementService{statementRepo: statementRepo}
}

func (s *statementService) CreateStatement(input *models.StatementInput) (*models.Statement, error) {
	statement := &models.Statement{
		CustomerID:    *input.CustomerID,
		StatementDate: *input.StatementDate,
		AmountDue:     *input.AmountDue,
		PaymentStatus: *input.PaymentStatus,
	}

	if err := s.statementRepo.Create(statement); err != nil {
		return nil, err
	}
	return statement, nil
}

func (s *statementService) GetStatementByID(id uint) (*models.Statement, error) {
	statement, err := s.statementRepo.GetByID(id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return statement, nil
}

func (s *statementService) GetAllStatements() ([]models.Statement, error) {
	return s.statementRepo.GetAll()
}

func (s *statementService) UpdateStatement(id uint, input *models.StatementInput) (*models.Statement, error) {
	statement, err := s.statementRepo.GetByID(id)
	if err != nil {
		return nil, translateNotFound(err)
	}

	statement.CustomerID = *input.CustomerID
	statement.StatementDate = *input.StatementDate
	statement.AmountDue = *input.AmountDue
	statement.PaymentStatus = *input.PaymentStatus

	if err := s.statementRepo.Update(statement); err != nil {
		return nil, err
	}
	return statement, nil
}

func (s *statementService) DeleteStatement(id uint) error {
	if _, err := s.statementRepo.GetByID(id); err != nil {
		return translateNotFound(err)
	}
	return s.statementRepo.Delete(id)
}
