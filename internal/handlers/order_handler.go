package handlers

import (
	"errors"
	"net/http"

	"cakehouse-pos/internal/models"
	"cakehouse-pos/internal/orders"

	"github.com/gin-gonic/gin"
)

// orderError maps the manager's error taxonomy onto HTTP statuses.
func orderError(c *gin.Context, err error) {
	var stockErr *orders.InsufficientStockError
	switch {
	case errors.As(err, &stockErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": stockErr.Error()})
	case errors.Is(err, orders.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, orders.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Order operation failed"})
	}
}

// GET /api/orders - newest first
func (h *Handler) GetOrders(c *gin.Context) {
	var list []models.Order
	if err := h.DB.Order("created_at DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/orders/:id - order plus items with current product names
func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	detail, err := h.Orders.GetOrderWithItems(id)
	if err != nil {
		orderError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// POST /api/orders - the core operation
func (h *Handler) PlaceOrder(c *gin.Context) {
	var req orders.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	id, err := h.Orders.PlaceOrder(req)
	if err != nil {
		orderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "success": true})
}

type bulkDeleteRequest struct {
	IDs []uint `json:"ids"`
}

// POST /api/orders/bulk-delete
func (h *Handler) BulkDeleteOrders(c *gin.Context) {
	var req bulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid IDs"})
		return
	}

	if err := h.Orders.BulkDeleteOrders(req.IDs); err != nil {
		orderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DELETE /api/orders/:id
func (h *Handler) DeleteOrder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	if err := h.Orders.DeleteOrder(id); err != nil {
		orderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DELETE /api/orders - wipe the whole history (stock is restored)
func (h *Handler) ClearAllOrders(c *gin.Context) {
	if err := h.Orders.ClearAllOrders(); err != nil {
		orderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
