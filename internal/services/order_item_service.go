package services

import (
	"utibu_health/internal/models"
	"utibu_health/internal/repository"
)

type OrderItemService interface {
	CreateOrderItem(input *models.OrderItemInput) (*models.OrderItem, error)
	GetOrderItemByID(id uint) (*models.OrderItem, error)
	GetAllOrderItems() ([]models.OrderItem, error)
	UpdateOrderItem(id uint, input *models.OrderItemInput) (*models.OrderItem, error)
	DeleteOrderItem(id uint) error
}

type orderItemService struct {
	orderItemRepo repository.OrderItemRepository
}

func NewOrderItemService(orderItemRepo repository.OrderItemRepository) OrderItemService {
	return &orderItemService{orderItemRepo: orderItemRepo}
}

// CreateOrderItem stores the line as supplied. Subtotal is trusted verbatim
// rather than recomputed from quantity and price.
func (s *orderItemService) CreateOrderItem(input *models.OrderItemInput) (*models.OrderItem, error) {
	item := &models.OrderItem{
		OrderID:      *input.OrderID,
		MedicationID: *input.MedicationID,
		Quantity:     *input.Quantity,
		Subtotal:     *input.Subtotal,
	}

	if err := s.orderItemRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *orderItemService) GetOrderItemByID(id uint) (*models.OrderItem, error) {
	item, err := s.orderItemRepo.GetByID(id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return item, nil
}

func (s *orderItemService) GetAllOrderItems() ([]models.OrderItem, error) {
	return s.orderItemRepo.GetAll()
}

func (s *orderItemService) UpdateOrderItem(id uint, input *models.OrderItemInput) (*models.OrderItem, error) {
	item, err := s.orderItemRepo.GetByID(id)
	if err != nil {
		return nil, translateNotFound(err)
	}

	item.OrderID = *input.OrderID
	item.MedicationID = *input.MedicationID
	item.Quantity = *input.Quantity
	item.Subtotal = *input.Subtotal

	if err := s.orderItemRepo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *orderItemService) DeleteOrderItem(id uint) error {
	if _, err := s.orderItemRepo.GetByID(id); err != nil {
		return translateNotFound(err)
	}
	return s.orderItemRepo.Delete(id)
}
