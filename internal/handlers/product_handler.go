package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"cakehouse-pos/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GET /api/products
func (h *Handler) GetProducts(c *gin.Context) {
	var products []models.Product
	if err := h.DB.Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// GET /api/categories - there is no category model; the client still
// asks, so answer with an empty list.
func (h *Handler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, []string{})
}

// parseNumberField parses a form number strictly. An absent/empty
// field falls back to the default, but garbage like "abc" is an error
// instead of silently becoming zero.
func parseNumberField(value string, fallback float64) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", value)
	}
	return n, nil
}

// POST /api/products - multipart form, image optional
func (h *Handler) CreateProduct(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	price, err := parseNumberField(c.PostForm("price"), 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price: " + err.Error()})
		return
	}
	stock, err := parseNumberField(c.PostForm("stock_quantity"), 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid stock_quantity: " + err.Error()})
		return
	}

	unit := c.PostForm("unit")
	if unit == "" {
		unit = "pcs"
	}

	product := models.Product{
		Name:          name,
		Unit:          unit,
		Price:         price,
		Description:   c.PostForm("description"),
		StockQuantity: stock,
	}

	// Image is optional; when present it lands in the uploads dir
	// under a collision-free name and the product stores the
	// relative URL.
	if file, err := c.FormFile("image"); err == nil {
		filename := uuid.NewString() + filepath.Ext(file.Filename)
		if err := c.SaveUploadedFile(file, filepath.Join(h.UploadDir, filename)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
			return
		}
		product.ImageURL = "/uploads/" + filename
	}

	if err := h.DB.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": product.ID})
}
