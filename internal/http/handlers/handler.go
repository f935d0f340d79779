package handlers

import (
	"net/http"
	"strconv"

	"tasktracker/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Handler struct {
	DB       *pgxpool.Pool
	Tasks    *repository.TaskRepository
	Subtasks *repository.SubtaskRepository
	Stats    *repository.StatsRepository
}

func NewHandler(db *pgxpool.Pool) *Handler {
	return &Handler{
		DB:       db,
		Tasks:    repository.NewTaskRepository(db),
		Subtasks: repository.NewSubtaskRepository(db),
		Stats:    repository.NewStatsRepository(db),
	}
}

// parseID extracts the numeric :id path param. On failure it writes the 400
// response itself and reports false.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
