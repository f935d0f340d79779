package http

import (
	"time"

	"tasktracker/internal/config"
	"tasktracker/internal/http/handlers"
	"tasktracker/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RegisterRoutes wires the API onto the engine. cfg may be nil (tests);
// defaults are applied in that case and no rate limiting is attached.
func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, cfg *config.Config) {
	h := handlers.NewHandler(db)
	healthHandler := handlers.NewHealthHandler(db)

	// probes, never rate limited
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	var limiter gin.HandlerFunc
	if cfg != nil && cfg.APIRateLimit > 0 {
		window := cfg.APIRateWindow
		if window <= 0 {
			window = time.Minute
		}
		if cfg.RedisAddr != "" {
			limiter = middleware.RedisRateLimit(cfg.APIRateLimit, window)
		} else {
			limiter = middleware.SimpleRateLimit(cfg.APIRateLimit, window)
		}
	}

	v1 := r.Group("/api/v1")
	if limiter != nil {
		v1.Use(limiter)
	}
	registerAPIRoutes(v1, h, healthHandler)

	// legacy unversioned prefix kept for existing clients
	api := r.Group("/api")
	if limiter != nil {
		api.Use(limiter)
	}
	registerAPIRoutes(api, h, healthHandler)
}

func registerAPIRoutes(api *gin.RouterGroup, h *handlers.Handler, health *handlers.HealthHandler) {
	api.GET("/health", health.Health)

	api.GET("/tasks", h.ListTasks)
	api.POST("/tasks", h.CreateTask)
	api.GET("/tasks/:id", h.GetTask)
	api.PUT("/tasks/:id", h.UpdateTask)
	api.PATCH("/tasks/:id/toggle", h.ToggleTask)
	api.DELETE("/tasks/:id", h.DeleteTask)

	api.PATCH("/subtasks/:id/toggle", h.ToggleSubtask)

	api.GET("/stats", h.GetStats)
}
