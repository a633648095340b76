package services

import (
	"errors"
	"testing"

	"utibu_health/internal/models"
	"utibu_health/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func medicationInput(name string) *models.MedicationInput {
	return &models.MedicationInput{
		Name:         ptr(name),
		Description:  ptr("Pain reliever"),
		StockLevel:   ptr(100),
		PricePerUnit: ptr(5.50),
	}
}

func newMedicationService(t *testing.T) MedicationService {
	t.Helper()
	db := newTestDB(t)
	return NewMedicationService(repository.NewMedicationRepository(db), repository.NewCartItemRepository(db), nil)
}

func TestCreateMedicationRoundTrip(t *testing.T) {
	svc := newMedicationService(t)

	created, err := svc.CreateMedication(medicationInput("Paracetamol"))
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.GetMedicationByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Paracetamol", got.Name)
	assert.Equal(t, 100, got.StockLevel)
	assert.Equal(t, 5.50, got.PricePerUnit)
}

func TestCreateMedicationDuplicateName(t *testing.T) {
	svc := newMedicationService(t)

	_, err := svc.CreateMedication(medicationInput("Paracetamol"))
	require.NoError(t, err)

	_, err = svc.CreateMedication(medicationInput("Paracetamol"))
	assert.True(t, errors.Is(err, ErrConflict))
}

func TestUpdateMedicationReplacesAllFields(t *testing.T) {
	svc := newMedicationService(t)

	created, err := svc.CreateMedication(medicationInput("Paracetamol"))
	require.NoError(t, err)

	updated, err := svc.UpdateMedication(created.ID, &models.MedicationInput{
		Name:         ptr("Paracetamol 500mg"),
		Description:  ptr("Pain reliever and fever reducer"),
		StockLevel:   ptr(80),
		PricePerUnit: ptr(6.25),
	})
	require.NoError(t, err)
	assert.Equal(t, "Paracetamol 500mg", updated.Name)
	assert.Equal(t, 80, updated.StockLevel)
	assert.Equal(t, 6.25, updated.PricePerUnit)
}

func TestUpdateMedicationRejectsTakenName(t *testing.T) {
	svc := newMedicationService(t)

	_, err := svc.CreateMedication(medicationInput("Paracetamol"))
	require.NoError(t, err)
	created, err := svc.CreateMedication(medicationInput("Ibuprofen"))
	require.NoError(t, err)

	_, err = svc.UpdateMedication(created.ID, medicationInput("Paracetamol"))
	assert.True(t, errors.Is(err, ErrConflict), "renaming onto another row's name must conflict")

	// Keeping its own name is not a conflict.
	input := medicationInput("Ibuprofen")
	input.StockLevel = ptr(50)
	updated, err := svc.UpdateMedication(created.ID, input)
	require.NoError(t, err)
	assert.Equal(t, 50, updated.StockLevel)
}

func TestMedicationNotFound(t *testing.T) {
	svc := newMedicationService(t)

	_, err := svc.GetMedicationByID(42)
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = svc.UpdateMedication(42, medicationInput("Paracetamol"))
	assert.True(t, errors.Is(err, ErrNotFound))

	assert.True(t, errors.Is(svc.DeleteMedication(42), ErrNotFound))
}

func TestDeleteMedication(t *testing.T) {
	svc := newMedicationService(t)

	created, err := svc.CreateMedication(medicationInput("Paracetamol"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMedication(created.ID))
	_, err = svc.GetMedicationByID(created.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}
