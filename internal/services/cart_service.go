package services

import (
	"errors"
	"time"

	"utibu_health/internal/models"
	"utibu_health/internal/repository"

	"gorm.io/gorm"
)

// CartViewCache caches the computed cart view per customer. cache.Client is
// the production implementation.
type CartViewCache interface {
	GetCartView(customerID uint) ([]models.CartLine, error)
	SetCartView(customerID uint, lines []models.CartLine, ttl time.Duration) error
	InvalidateCartView(customerID uint) error
}

type CartService interface {
	AddToCart(input *models.CartItemInput) (*models.CartItem, error)
	GetCartForCustomer(customerID uint) ([]models.CartLine, error)
	GetCartItemByID(id uint) (*models.CartItem, error)
	GetAllCartItems() ([]models.CartItem, error)
	UpdateQuantity(id uint, quantity int) (*models.CartItem, error)
	RemoveFromCart(id uint) error
}

type cartService struct {
	cartRepo       repository.CartItemRepository
	customerRepo   repository.CustomerRepository
	medicationRepo repository.MedicationRepository
	cache          CartViewCache
	cacheTTL       time.Duration
}

// NewCartService builds the cart service. cacheClient may be nil, in which
// case every cart listing reads straight from the database.
func NewCartService(
	cartRepo repository.CartItemRepository,
	customerRepo repository.CustomerRepository,
	medicationRepo repository.MedicationRepository,
	cacheClient CartViewCache,
	cacheTTL time.Duration,
) CartService {
	return &cartService{
		cartRepo:       cartRepo,
		customerRepo:   customerRepo,
		medicationRepo: medicationRepo,
		cache:          cacheClient,
		cacheTTL:       cacheTTL,
	}
}

// AddToCart inserts a cart line. A customer's cart holds at most one line per
// medication; a duplicate pair is a conflict, not a quantity increment.
func (s *cartService) AddToCart(input *models.CartItemInput) (*models.CartItem, error) {
	_, err := s.cartRepo.GetByCustomerAndMedication(*input.CustomerID, *input.MedicationID)
	if err == nil {
		return nil, ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	item := &models.CartItem{
		CustomerID:   *input.CustomerID,
		MedicationID: *input.MedicationID,
		Quantity:     *input.Quantity,
	}

	if err := s.cartRepo.Create(item); err != nil {
		return nil, err
	}
	s.invalidateCache(item.CustomerID)
	return item, nil
}

// GetCartForCustomer returns the computed cart view: each line joined to its
// medication with Subtotal = Quantity * PricePerUnit derived at read time.
// Lines whose medication has been deleted are skipped. The view is cached per
// customer; a cache miss or failure falls through to the database.
func (s *cartService) GetCartForCustomer(customerID uint) ([]models.CartLine, error) {
	if _, err := s.customerRepo.GetByID(customerID); err != nil {
		return nil, translateNotFound(err)
	}

	if s.cache != nil {
		if lines, err := s.cache.GetCartView(customerID); err == nil {
			return lines, nil
		}
	}

	items, err := s.cartRepo.GetByCustomerID(customerID)
	if err != nil {
		return nil, err
	}

	lines := make([]models.CartLine, 0, len(items))
	for _, item := range items {
		medication, err := s.medicationRepo.GetByID(item.MedicationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		lines = append(lines, models.CartLine{
			CartItemID:     item.ID,
			MedicationID:   medication.ID,
			MedicationName: medication.Name,
			Quantity:       item.Quantity,
			Subtotal:       float64(item.Quantity) * medication.PricePerUnit,
		})
	}

	if s.cache != nil {
		s.cache.SetCartView(customerID, lines, s.cacheTTL)
	}
	return lines, nil
}

func (s *cartService) GetCartItemByID(id uint) (*models.CartItem, error) {
	item, err := s.cartRepo.GetByID(id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return item, nil
}

func (s *cartService) GetAllCartItems() ([]models.CartItem, error) {
	return s.cartRepo.GetAll()
}

func (s *cartService) UpdateQuantity(id uint, quantity int) (*models.CartItem, error) {
	item, err := s.cartRepo.GetByID(id)
	if err != nil {
		return nil, translateNotFound(err)
	}

	item.Quantity = quantity
	if err := s.cartRepo.Update(item); err != nil {
		return nil, err
	}
	s.invalidateCache(item.CustomerID)
	return item, nil
}

func (s *cartService) RemoveFromCart(id uint) error {
	item, err := s.cartRepo.GetByID(id)
	if err != nil {
		return translateNotFound(err)
	}

	if err := s.cartRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateCache(item.CustomerID)
	return nil
}

func (s *cartService) invalidateCache(customerID uint) {
	if s.cache != nil {
		s.cache.InvalidateCartView(customerID)
	}
}
