package services

import (
	"errors"
	"testing"
	"time"

	"utibu_health/internal/models"
	"utibu_health/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paymentInput(orderID uint) *models.PaymentInput {
	return &models.PaymentInput{
		OrderID:       ptr(orderID),
		PaymentDate:   ptr(models.NewDateTime(time.Date(2024, 3, 16, 9, 0, 0, 0, time.UTC))),
		AmountPaid:    ptr(50.0),
		PaymentMethod: ptr("M-Pesa"),
	}
}

func TestPaymentCRUD(t *testing.T) {
	svc := NewPaymentService(repository.NewPaymentRepository(newTestDB(t)))

	created, err := svc.CreatePayment(paymentInput(1))
	require.NoError(t, err)

	got, err := svc.GetPaymentByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(1), got.OrderID)
	assert.Equal(t, 50.0, got.AmountPaid)
	assert.Equal(t, "M-Pesa", got.PaymentMethod)

	input := paymentInput(2)
	input.PaymentMethod = ptr("Card")
	updated, err := svc.UpdatePayment(created.ID, input)
	require.NoError(t, err)
	assert.Equal(t, uint(2), updated.OrderID)
	assert.Equal(t, "Card", updated.PaymentMethod)

	require.NoError(t, svc.DeletePayment(created.ID))
	_, err = svc.GetPaymentByID(created.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestPaymentNotFound(t *testing.T) {
	svc := NewPaymentService(repository.NewPaymentRepository(newTestDB(t)))

	_, err := svc.GetPaymentByID(42)
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = svc.UpdatePayment(42, paymentInput(1))
	assert.True(t, errors.Is(err, ErrNotFound))

	assert.True(t, errors.Is(svc.DeletePayment(42), ErrNotFound))
}
