package handlers

import (
	"errors"
	"net/http"

	"utibu_health/internal/models"
	"utibu_health/internal/services"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cartService services.CartService
}

func NewCartHandler(cartService services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

func (h *CartHandler) AddToCart(c *gin.Context) {
	var input models.CartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Customer ID, Medication ID, and quantity are required"})
		return
	}

	if _, err := h.cartService.AddToCart(&input); err != nil {
		if errors.Is(err, services.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Item already exists in the cart"})
			return
		}
		handleServiceError(c, err, "Cart item")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Item added to cart successfully"})
}

// GetCartForCustomer returns the computed cart view for a customer: each line
// joined to its medication with the subtotal derived from the current price.
func (h *CartHandler) GetCartForCustomer(c *gin.Context) {
	customerID, ok := parseIDParam(c, "customerId")
	if !ok {
		return
	}

	lines, err := h.cartService.GetCartForCustomer(customerID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		handleServiceError(c, err, "Cart")
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart_items": lines})
}

func (h *CartHandler) ListCartItems(c *gin.Context) {
	items, err := h.cartService.GetAllCartItems()
	if err != nil {
		handleServiceError(c, err, "Cart item")
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart_items": items})
}

func (h *CartHandler) GetCartItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	item, err := h.cartService.GetCartItemByID(id)
	if err != nil {
		handleServiceError(c, err, "Cart item")
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdateCartItem changes the quantity of an existing cart line; no other
// field is writable through the cart.
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var update models.CartItemQuantityUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity is required"})
		return
	}

	if _, err := h.cartService.UpdateQuantity(id, *update.Quantity); err != nil {
		handleServiceError(c, err, "Cart item")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart item updated successfully"})
}

func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.cartService.RemoveFromCart(id); err != nil {
		handleServiceError(c, err, "Cart item")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart successfully"})
}
