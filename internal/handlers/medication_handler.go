package handlers

import (
	"net/http"

	"utibu_health/internal/models"
	"utibu_health/internal/services"

	"github.com/gin-gonic/gin"
)

type MedicationHandler struct {
	medicationService services.MedicationService
}

func NewMedicationHandler(medicationService services.MedicationService) *MedicationHandler {
	return &MedicationHandler{medicationService: medicationService}
}

func (h *MedicationHandler) CreateMedication(c *gin.Context) {
	var input models.MedicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if _, err := h.medicationService.CreateMedication(&input); err != nil {
		handleServiceError(c, err, "Medication")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Medication created successfully"})
}

func (h *MedicationHandler) ListMedications(c *gin.Context) {
	medications, err := h.medicationService.GetAllMedications()
	if err != nil {
		handleServiceError(c, err, "Medication")
		return
	}
	c.JSON(http.StatusOK, gin.H{"medications": medications})
}

func (h *MedicationHandler) GetMedication(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	medication, err := h.medicationService.GetMedicationByID(id)
	if err != nil {
		handleServiceError(c, err, "Medication")
		return
	}
	c.JSON(http.StatusOK, medication)
}

// UpdateMedication replaces every field; a request missing any field is
// rejected rather than keeping the old value.
func (h *MedicationHandler) UpdateMedication(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input models.MedicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "all medication fields are required"})
		return
	}

	if _, err := h.medicationService.UpdateMedication(id, &input); err != nil {
		handleServiceError(c, err, "Medication")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Medication updated successfully"})
}

func (h *MedicationHandler) DeleteMedication(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.medicationService.DeleteMedication(id); err != nil {
		handleServiceError(c, err, "Medication")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Medication deleted successfully"})
}
