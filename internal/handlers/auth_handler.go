package handlers

import (
	"errors"
	"net/http"

	"utibu_health/internal/models"
	"utibu_health/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService     services.AuthService
	customerService services.CustomerService
}

func NewAuthHandler(authService services.AuthService, customerService services.CustomerService) *AuthHandler {
	return &AuthHandler{
		authService:     authService,
		customerService: customerService,
	}
}

// Signup registers a new customer account.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if _, err := h.customerService.Register(&req); err != nil {
		if errors.Is(err, services.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Customer with the same username or email already exists"})
			return
		}
		handleServiceError(c, err, "Customer")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Customer added successfully"})
}

// Login checks credentials and returns an access token for the customer.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	customer, token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		handleServiceError(c, err, "Customer")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Login successful",
		"access_token": token,
		"email":        customer.Email,
		"customer_id":  customer.ID,
	})
}
