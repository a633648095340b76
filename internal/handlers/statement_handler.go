package handlers

import (
	"net/http"

	"utibu_health/internal/models"
	"utibu_health/internal/services"

	"github.com/gin-gonic/gin"
)

type StatementHandler struct {
	statementService services.StatementService
}

func NewStatementHandler(statementService services.StatementService) *StatementHandler {
	return &StatementHandler{statementService: statementService}
}

func (h *StatementHandler) CreateStatement(c *gin.Context) {
	var input models.StatementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if _, err := h.statementService.CreateStatement(&input); err != nil {
		handleServiceError(c, err, "Statement")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Statement created successfully"})
}

func (h *StatementHandler) ListStatements(c *gin.Context) {
	statements, err := h.statementService.GetAllStatements()
	if err != nil {
		handleServiceError(c, err, "Statement")
		return
	}
	c.JSON(http.StatusOK, gin.H{"statements": statements})
}

func (h *StatementHandler) GetStatement(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	statement, err := h.statementService.GetStatementByID(id)
	if err != nil {
		handleServiceError(c, err, "Statement")
		return
	}
	c.JSON(http.StatusOK, statement)
}

func (h *StatementHandler) UpdateStatement(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input models.StatementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "all statement fields are required"})
		return
	}

	if _, err := h.statementService.UpdateStatement(id, &input); err != nil {
		handleServiceError(c, err, "Statement")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Statement updated successfully"})
}

func (h *StatementHandler) DeleteStatement(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.statementService.DeleteStatement(id); err != nil {
		handleServiceError(c, err, "Statement")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Statement deleted successfully"})
}
