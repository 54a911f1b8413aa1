package handlers

import (
	"net/http"

	"github.com/Amrutha2803/employee-list/internal/storage"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	backend storage.Backend
}

func NewHealthHandler(backend storage.Backend) *HealthHandler {
	return &HealthHandler{backend: backend}
}

// GET /health (also verifies the store is reachable)
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.backend.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "store_error", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
