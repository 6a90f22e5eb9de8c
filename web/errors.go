package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studieren/blogly/repository"
)

// statusFor maps repository error kinds onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrIntegrityViolation):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// fail renders the error page. Internal errors are logged and their text
// is not shown to the client.
func (h *Handler) fail(c *gin.Context, err error) {
	status := statusFor(err)
	message := err.Error()
	switch status {
	case http.StatusInternalServerError:
		h.logger.Error(c.Request.Context(), "request failed", map[string]interface{}{
			"path":  c.Request.URL.Path,
			"error": err.Error(),
		})
		message = http.StatusText(status)
	case http.StatusNotFound:
		message = "Sorry, we couldn't find that page."
	case http.StatusConflict:
		message = "That conflicts with an existing record: " + err.Error()
	}
	c.HTML(status, "error", gin.H{
		"Title":   http.StatusText(status),
		"Status":  status,
		"Message": message,
	})
	c.Abort()
}
