package handlers

import (
	"net/http"

	"utibu_health/internal/models"
	"utibu_health/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderItemHandler struct {
	orderItemService services.OrderItemService
}

func NewOrderItemHandler(orderItemService services.OrderItemService) *OrderItemHandler {
	return &OrderItemHandler{orderItemService: orderItemService}
}

func (h *OrderItemHandler) CreateOrderItem(c *gin.Context) {
	var input models.OrderItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if _, err := h.orderItemService.CreateOrderItem(&input); err != nil {
		handleServiceError(c, err, "Order item")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Order item created successfully"})
}

func (h *OrderItemHandler) ListOrderItems(c *gin.Context) {
	items, err := h.orderItemService.GetAllOrderItems()
	if err != nil {
		handleServiceError(c, err, "Order item")
		return
	}
	c.JSON(http.StatusOK, gin.H{"order_items": items})
}

func (h *OrderItemHandler) GetOrderItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	item, err := h.orderItemService.GetOrderItemByID(id)
	if err != nil {
		handleServiceError(c, err, "Order item")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *OrderItemHandler) UpdateOrderItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input models.OrderItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "all order item fields are required"})
		return
	}

	if _, err := h.orderItemService.UpdateOrderItem(id, &input); err != nil {
		handleServiceError(c, err, "Order item")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order item updated successfully"})
}

func (h *OrderItemHandler) DeleteOrderItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.orderItemService.DeleteOrderItem(id); err != nil {
		handleServiceError(c, err, "Order item")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order item deleted successfully"})
}
