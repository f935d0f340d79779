package handlers

import (
	"errors"
	"net/http"

	"tasktracker/internal/domain"
	"tasktracker/internal/logger"

	"github.com/gin-gonic/gin"
)

// ToggleSubtask flips a subtask's completed flag.
func (h *Handler) ToggleSubtask(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	completed, err := h.Subtasks.ToggleCompleted(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrSubtaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "subtask not found"})
			return
		}
		logger.Error("toggle subtask failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to toggle subtask"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "completed": completed})
}
