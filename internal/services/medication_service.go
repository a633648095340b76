package services

import (
	"errors"

	"utibu_health/internal/models"
	"utibu_health/internal/repository"

	"gorm.io/gorm"
)

type MedicationService interface {
	CreateMedication(input *models.MedicationInput) (*models.Medication, error)
	GetMedicationByID(id uint) (*models.Medication, error)
	GetAllMedications() ([]models.Medication, error)
	UpdateMedication(id uint, input *models.MedicationInput) (*models.Medication, error)
	DeleteMedication(id uint) error
}

type medicationService struct {
	medicationRepo repository.MedicationRepository
	cartRepo       repository.CartItemRepository
	cache          CartViewCache
}

// NewMedicationService builds the catalog service. Cached cart views embed
// medication names and prices, so catalog mutations invalidate the view of
// every customer holding the medication in their cart. cacheClient may be nil.
func NewMedicationService(
	medicationRepo repository.MedicationRepository,
	cartRepo repository.CartItemRepository,
	cacheClient CartViewCache,
) MedicationService {
	return &medicationService{
		medicationRepo: medicationRepo,
		cartRepo:       cartRepo,
		cache:          cacheClient,
	}
}

// CreateMedication inserts a catalog entry after checking name uniqueness.
func (s *medicationService) CreateMedication(input *models.MedicationInput) (*models.Medication, error) {
	_, err := s.medicationRepo.GetByName(*input.Name)
	if err == nil {
		return nil, ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	medication := &models.Medication{
		Name:         *input.Name,
		Description:  *input.Description,
		StockLevel:   *input.StockLevel,
		PricePerUnit: *input.PricePerUnit,
	}

	if err := s.medicationRepo.Create(medication); err != nil {
		return nil, err
	}
	return medication, nil
}

func (s *medicationService) GetMedicationByID(id uint) (*models.Medication, error) {
	medication, err := s.medicationRepo.GetByID(id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return medication, nil
}

func (s *medicationService) GetAllMedications() ([]models.Medication, error) {
	return s.medicationRepo.GetAll()
}

// UpdateMedication replaces every field; the handler guarantees all of them
// are present in the request. Renaming to a name another row holds is a
// conflict, same as on create.
func (s *medicationService) UpdateMedication(id uint, input *models.MedicationInput) (*models.Medication, error) {
	medication, err := s.medicationRepo.GetByID(id)
	if err != nil {
		return nil, translateNotFound(err)
	}

	other, err := s.medicationRepo.GetByName(*input.Name)
	if err == nil && other.ID != id {
		return nil, ErrConflict
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	medication.Name = *input.Name
	medication.Description = *input.Description
	medication.StockLevel = *input.StockLevel
	medication.PricePerUnit = *input.PricePerUnit

	if err := s.medicationRepo.Update(medication); err != nil {
		return nil, err
	}
	s.invalidateCartViews(id)
	return medication, nil
}

func (s *medicationService) DeleteMedication(id uint) error {
	if _, err := s.medicationRepo.GetByID(id); err != nil {
		return translateNotFound(err)
	}
	if err := s.medicationRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateCartViews(id)
	return nil
}

// invalidateCartViews drops the cached view of every customer whose cart
// holds the medication. The next read recomputes from the database.
func (s *medicationService) invalidateCartViews(medicationID uint) {
	if s.cache == nil {
		return
	}
	items, err := s.cartRepo.GetByMedicationID(medicationID)
	if err != nil {
		return
	}
	for _, item := range items {
		s.cache.InvalidateCartView(item.CustomerID)
	}
}
