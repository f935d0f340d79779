package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type windowState struct {
	start time.Time
	count int
}

// SimpleRateLimit is an in-process fixed-window limiter keyed by client IP.
// Used when Redis is not configured; state is per-process and lost on
// restart.
func SimpleRateLimit(maxRequests int, window time.Duration) gin.HandlerFunc {
	var mu sync.Mutex
	clients := make(map[string]*windowState)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		mu.Lock()
		ws, ok := clients[ip]
		if !ok || now.Sub(ws.start) > window {
			clients[ip] = &windowState{start: now, count: 1}
			// drop stale entries while the map is held, keeps memory bounded
			for k, v := range clients {
				if now.Sub(v.start) > 2*window {
					delete(clients, k)
				}
			}
			mu.Unlock()
			c.Next()
			return
		}
		ws.count++
		count := ws.count
		mu.Unlock()

		RLRequests.WithLabelValues(c.FullPath()).Inc()
		if count > maxRequests {
			RLBlocked.WithLabelValues(c.FullPath()).Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
