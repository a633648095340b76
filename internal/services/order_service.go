package services

import (
	"utibu_health/internal/models"
	"utibu_health/internal/repository"
)

type OrderService interface {
	CreateOrder(input *models.OrderInput) (*models.Order, error)
	GetOrderByID(id uint) (*models.Order, error)
	GetAllOrders() ([]models.Order, error)
	UpdateOrder(id uint, input *models.OrderInput) (*models.Order, error)
	DeleteOrder(id uint) error
}

type orderService struct {
	orderRepo repository.OrderRepository
}

func NewOrderService(orderRepo repository.OrderRepository) OrderService {
	return &orderService{orderRepo: orderRepo}
}

// CreateOrder stores the order as supplied. TotalAmount is trusted verbatim;
// it is not derived from the order's items, and creating an order and its
// items are independent commits with no rollback link.
func (s *orderService) CreateOrder(input *models.OrderInput) (*models.Order, error) {
	order := &models.Order{
		CustomerID:  *input.CustomerID,
		OrderDate:   *input.OrderDate,
		Status:      *input.Status,
		TotalAmount: *input.TotalAmount,
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) GetOrderByID(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return order, nil
}

func (s *orderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

func (s *orderService) UpdateOrder(id uint, input *models.OrderInput) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, translateNotFound(err)
	}

	order.CustomerID = *input.CustomerID
	order.OrderDate = *input.OrderDate
	order.Status = *input.Status
	order.TotalAmount = *input.TotalAmount

	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) DeleteOrder(id uint) error {
	if _, err := s.orderRepo.GetByID(id); err != nil {
		return translateNotFound(err)
	}
	return s.orderRepo.Delete(id)
}
