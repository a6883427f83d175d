package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (h HandlerSet) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	checks := gin.H{"database": "ok"}

	if err := h.db.Ping(ctx); err != nil {
		checks["database"] = "unreachable"
		status = http.StatusServiceUnavailable
	}

	if h.cache != nil {
		checks["cache"] = "ok"
		// Cache state is reported but never fails the check.
		if err := h.cache.Ping(ctx).Err(); err != nil {
			checks["cache"] = "unreachable"
		}
	}

	word := "ok"
	if status != http.StatusOK {
		word = "degraded"
	}

	c.JSON(status, gin.H{"status": word, "checks": checks})
}
