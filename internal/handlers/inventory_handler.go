package handlers

import (
	"net/http"
	"strings"

	"cakehouse-pos/internal/models"

	"github.com/gin-gonic/gin"
)

// GET /api/inventory
func (h *Handler) GetIngredients(c *gin.Context) {
	var ingredients []models.Ingredient
	if err := h.DB.Find(&ingredients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ingredients"})
		return
	}
	c.JSON(http.StatusOK, ingredients)
}

type createIngredientRequest struct {
	Name              string   `json:"name" binding:"required"`
	Unit              string   `json:"unit" binding:"required"`
	CurrentStock      float64  `json:"current_stock"`
	LowStockThreshold *float64 `json:"low_stock_threshold"`
}

// POST /api/inventory
func (h *Handler) CreateIngredient(c *gin.Context) {
	var input createIngredientRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and unit are required, numeric fields must be numbers"})
		return
	}

	threshold := 5.0
	if input.LowStockThreshold != nil {
		threshold = *input.LowStockThreshold
	}

	ingredient := models.Ingredient{
		Name:              strings.TrimSpace(input.Name),
		Unit:              input.Unit,
		CurrentStock:      input.CurrentStock,
		LowStockThreshold: threshold,
	}
	if err := h.DB.Create(&ingredient).Error; err != nil {
		// Ingredient names are unique
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create ingredient (name may already exist)"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": ingredient.ID, "success": true})
}

type updateStockRequest struct {
	CurrentStock *float64 `json:"current_stock" binding:"required"`
}

// PUT /api/inventory/:id - manual stock edit (no recipe model; the
// baker counts the flour and types the number in)
func (h *Handler) UpdateIngredientStock(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ingredient ID"})
		return
	}

	var input updateStockRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "current_stock is required and must be a number"})
		return
	}

	result := h.DB.Model(&models.Ingredient{}).
		Where("id = ?", id).
		Update("current_stock", *input.CurrentStock)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update stock"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ingredient not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DELETE /api/inventory/:id
func (h *Handler) DeleteIngredient(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ingredient ID"})
		return
	}

	result := h.DB.Delete(&models.Ingredient{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete ingredient"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ingredient not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
