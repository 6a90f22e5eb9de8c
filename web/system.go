package web

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// healthz pings the database and redis (when configured).
func (h *Handler) healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status := http.StatusOK
	checks := gin.H{}
	for name, err := range h.tool.Ping(ctx) {
		if err != nil {
			status = http.StatusServiceUnavailable
			checks[name] = gin.H{"status": "error", "error": err.Error()}
			continue
		}
		checks[name] = gin.H{"status": "ok"}
	}
	c.JSON(status, gin.H{"ok": status == http.StatusOK, "checks": checks})
}

func (h *Handler) metrics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "ok",
		"data":    h.tool.Metrics(c.Request.Context()),
	})
}
