package handlers

import (
	"strconv"

	"cakehouse-pos/internal/orders"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler bundles the store handle and the order manager. Handlers are
// methods instead of free functions over a package-global DB so tests
// can run each suite against its own in-memory store.
type Handler struct {
	DB        *gorm.DB
	Orders    *orders.Manager
	UploadDir string
}

func New(db *gorm.DB, uploadDir string) *Handler {
	return &Handler{
		DB:        db,
		Orders:    orders.NewManager(db),
		UploadDir: uploadDir,
	}
}

// idParam parses the ":id" URL segment.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
