package services

import (
	"utibu_health/internal/models"
	"utibu_health/internal/repository"
)

type PaymentService interface {
	CreatePayment(input *models.PaymentInput) (*models.Payment, error)
	GetPaymentByID(id uint) (*models.Payment, error)
	GetAllPayments() ([]models.Payment, error)
	UpdatePayment(id uint, input *models.PaymentInput) (*models.Payment, error)
	DeletePayment(id uint) error
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
}

func NewPaymentService(paymentRepo repository.PaymentRepository) PaymentService {
	return &paymentService{paymentRepo: paymentRepo}
}

func (s *paymentService) CreatePayment(input *models.PaymentInput) (*models.Payment, error) {
	payment := &models.Payment{
		OrderID:       *input.OrderID,
		PaymentDate:   *input.PaymentDate,
		AmountPaid:    *input.AmountPaid,
		PaymentMethod: *input.PaymentMethod,
	}

	if err := s.paymentRepo.Create(payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) GetPaymentByID(id uint) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByID(id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return payment, nil
}

func (s *paymentService) GetAllPayments() ([]models.Payment, error) {
	return s.paymentRepo.GetAll()
}

func (s *paymentService) UpdatePayment(id uint, input *models.PaymentInput) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByID(id)
	if err != nil {
		return nil, translateNotFound(err)
	}

	payment.OrderID = *input.OrderID
	payment.PaymentDate = *input.PaymentDate
	payment.AmountPaid = *input.AmountPaid
	payment.PaymentMethod = *input.PaymentMethod

	if err := s.paymentRepo.Update(payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) DeletePayment(id uint) error {
	if _, err := s.paymentRepo.GetByID(id); err != nil {
		return translateNotFound(err)
	}
	return s.paymentRepo.Delete(id)
}
