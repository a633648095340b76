package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"utibu_health/internal/services"

	"github.com/gin-gonic/gin"
)

// parseIDParam reads a numeric path parameter; a malformed value is a
// validation error.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id parameter"})
		return 0, false
	}
	return uint(id), true
}

// handleServiceError maps the service sentinels to transport status codes:
// not-found 404, conflict 409, auth failure 401, anything else 500.
func handleServiceError(c *gin.Context, err error, entity string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": entity + " not found"})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": entity + " already exists"})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
	default:
		log.Println("Internal error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
