package web

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/studieren/blogly/repository"
)

// pathID parses the :id segment. A non-numeric id is a missing page, the
// same as an unknown one.
func pathID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, repository.ErrNotFound
	}
	return uint(id), nil
}

// bindForm fills fields from the submitted form. Repeated id fields that do
// not parse as unsigned integers are a validation error.
func bindForm(c *gin.Context, fields interface{}) error {
	if err := c.ShouldBindWith(fields, binding.Form); err != nil {
		return &repository.ValidationError{Field: "form", Message: err.Error()}
	}
	return nil
}
