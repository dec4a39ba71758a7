package stubapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	store *Store
}

func NewHealthHandler(store *Store) *HealthHandler {
	return &HealthHandler{store: store}
}

func (h *HealthHandler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readyz reports ready once the catalogue has been seeded.
func (h *HealthHandler) Readyz(c *gin.Context) {
	n := len(h.store.ListCategories())
	if n == 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "store": "empty"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "categories": n})
}
