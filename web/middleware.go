package web

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/studieren/blogly/gormtool"
)

const requestIDHeader = "X-Request-ID"

// requestLogger tags the request context with an id and logs one line per
// request once the handler chain returns.
func requestLogger(logger gormtool.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)
		c.Request = c.Request.WithContext(gormtool.WithRequestID(c.Request.Context(), id))

		c.Next()

		fields := map[string]interface{}{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"client":   c.ClientIP(),
		}
		if loc := c.Writer.Header().Get("Location"); loc != "" {
			fields["location"] = loc
		}
		if c.Writer.Status() >= 500 {
			logger.Error(c.Request.Context(), "request", fields)
		} else {
			logger.Info(c.Request.Context(), "request", fields)
		}
	}
}
