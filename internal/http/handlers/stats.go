package handlers

import (
	"net/http"

	"tasktracker/internal/logger"

	"github.com/gin-gonic/gin"
)

// GetStats returns the task summary counts.
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.Stats.Get(c.Request.Context())
	if err != nil {
		logger.Error("get stats failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
