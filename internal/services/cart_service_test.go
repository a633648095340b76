package services

import (
	"errors"
	"testing"
	"time"

	"utibu_health/internal/models"
	"utibu_health/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type cartFixture struct {
	svc        CartService
	customerID uint
	medication *models.Medication
	db         *gorm.DB
}

func newCartFixture(t *testing.T) *cartFixture {
	t.Helper()
	db := newTestDB(t)

	customerRepo := repository.NewCustomerRepository(db)
	medicationRepo := repository.NewMedicationRepository(db)
	cartRepo := repository.NewCartItemRepository(db)

	customerSvc := NewCustomerService(customerRepo)
	customer, err := customerSvc.Register(signupRequest("jane", "jane@example.com"))
	require.NoError(t, err)

	medication := &models.Medication{Name: "Paracetamol", Description: "Pain reliever", StockLevel: 100, PricePerUnit: 5.50}
	require.NoError(t, medicationRepo.Create(medication))

	return &cartFixture{
		svc:        NewCartService(cartRepo, customerRepo, medicationRepo, nil, 0),
		customerID: customer.ID,
		medication: medication,
		db:         db,
	}
}

func (f *cartFixture) addLine(t *testing.T, quantity int) *models.CartItem {
	t.Helper()
	item, err := f.svc.AddToCart(&models.CartItemInput{
		CustomerID:   ptr(f.customerID),
		MedicationID: ptr(f.medication.ID),
		Quantity:     ptr(quantity),
	})
	require.NoError(t, err)
	return item
}

func TestAddToCartRejectsDuplicateLine(t *testing.T) {
	f := newCartFixture(t)
	f.addLine(t, 3)

	_, err := f.svc.AddToCart(&models.CartItemInput{
		CustomerID:   ptr(f.customerID),
		MedicationID: ptr(f.medication.ID),
		Quantity:     ptr(1),
	})
	assert.True(t, errors.Is(err, ErrConflict))
}

func TestGetCartForCustomerComputesSubtotal(t *testing.T) {
	f := newCartFixture(t)
	item := f.addLine(t, 3)

	lines, err := f.svc.GetCartForCustomer(f.customerID)
	require.NoError(t, err)
	require.Len(t, lines, 1)

	line := lines[0]
	assert.Equal(t, item.ID, line.CartItemID)
	assert.Equal(t, f.medication.ID, line.MedicationID)
	assert.Equal(t, "Paracetamol", line.MedicationName)
	assert.Equal(t, 3, line.Quantity)
	assert.Equal(t, 3*5.50, line.Subtotal, "subtotal is derived from the current price")
}

func TestGetCartForCustomerUnknownCustomer(t *testing.T) {
	f := newCartFixture(t)

	_, err := f.svc.GetCartForCustomer(999)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestGetCartSkipsOrphanedLines(t *testing.T) {
	f := newCartFixture(t)
	f.addLine(t, 3)

	// Delete the medication out from under the cart line.
	medicationRepo := repository.NewMedicationRepository(f.db)
	require.NoError(t, medicationRepo.Delete(f.medication.ID))

	lines, err := f.svc.GetCartForCustomer(f.customerID)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestUpdateQuantityReflectedInView(t *testing.T) {
	f := newCartFixture(t)
	item := f.addLine(t, 3)

	_, err := f.svc.UpdateQuantity(item.ID, 5)
	require.NoError(t, err)

	lines, err := f.svc.GetCartForCustomer(f.customerID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.Equal(t, 5*5.50, lines[0].Subtotal)
}

func TestRemoveFromCart(t *testing.T) {
	f := newCartFixture(t)
	item := f.addLine(t, 3)

	require.NoError(t, f.svc.RemoveFromCart(item.ID))

	lines, err := f.svc.GetCartForCustomer(f.customerID)
	require.NoError(t, err)
	assert.Empty(t, lines)

	assert.True(t, errors.Is(f.svc.RemoveFromCart(item.ID), ErrNotFound))
}

type fakeCartViewCache struct {
	views map[uint][]models.CartLine
}

func newFakeCartViewCache() *fakeCartViewCache {
	return &fakeCartViewCache{views: make(map[uint][]models.CartLine)}
}

func (f *fakeCartViewCache) GetCartView(customerID uint) ([]models.CartLine, error) {
	lines, ok := f.views[customerID]
	if !ok {
		return nil, errors.New("cart view not cached")
	}
	return lines, nil
}

func (f *fakeCartViewCache) SetCartView(customerID uint, lines []models.CartLine, ttl time.Duration) error {
	f.views[customerID] = lines
	return nil
}

func (f *fakeCartViewCache) InvalidateCartView(customerID uint) error {
	delete(f.views, customerID)
	return nil
}

type cachedCartFixture struct {
	cartSvc       CartService
	medicationSvc MedicationService
	viewCache     *fakeCartViewCache
	customerID    uint
	medicationID  uint
}

func newCachedCartFixture(t *testing.T) *cachedCartFixture {
	t.Helper()
	db := newTestDB(t)

	customerRepo := repository.NewCustomerRepository(db)
	medicationRepo := repository.NewMedicationRepository(db)
	cartRepo := repository.NewCartItemRepository(db)
	viewCache := newFakeCartViewCache()

	customer, err := NewCustomerService(customerRepo).Register(signupRequest("jane", "jane@example.com"))
	require.NoError(t, err)

	medicationSvc := NewMedicationService(medicationRepo, cartRepo, viewCache)
	medication, err := medicationSvc.CreateMedication(medicationInput("Paracetamol"))
	require.NoError(t, err)

	cartSvc := NewCartService(cartRepo, customerRepo, medicationRepo, viewCache, time.Minute)
	_, err = cartSvc.AddToCart(&models.CartItemInput{
		CustomerID:   ptr(customer.ID),
		MedicationID: ptr(medication.ID),
		Quantity:     ptr(3),
	})
	require.NoError(t, err)

	return &cachedCartFixture{
		cartSvc:       cartSvc,
		medicationSvc: medicationSvc,
		viewCache:     viewCache,
		customerID:    customer.ID,
		medicationID:  medication.ID,
	}
}

func TestMedicationPriceChangeInvalidatesCachedCartView(t *testing.T) {
	f := newCachedCartFixture(t)

	lines, err := f.cartSvc.GetCartForCustomer(f.customerID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Equal(t, 3*5.50, lines[0].Subtotal)
	require.Contains(t, f.viewCache.views, f.customerID, "first read populates the cache")

	input := medicationInput("Paracetamol")
	input.PricePerUnit = ptr(11.00)
	_, err = f.medicationSvc.UpdateMedication(f.medicationID, input)
	require.NoError(t, err)

	lines, err = f.cartSvc.GetCartForCustomer(f.customerID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 3*11.00, lines[0].Subtotal, "cart view must reflect the current price")
}

func TestMedicationDeleteInvalidatesCachedCartView(t *testing.T) {
	f := newCachedCartFixture(t)

	lines, err := f.cartSvc.GetCartForCustomer(f.customerID)
	require.NoError(t, err)
	require.Len(t, lines, 1)

	require.NoError(t, f.medicationSvc.DeleteMedication(f.medicationID))

	lines, err = f.cartSvc.GetCartForCustomer(f.customerID)
	require.NoError(t, err)
	assert.Empty(t, lines, "deleted medication must not linger in the cached view")
}
