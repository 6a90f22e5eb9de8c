package web

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studieren/blogly/repository"
)

func (h *Handler) showPost(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	post, err := h.repos.Posts.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "posts/detail", gin.H{"Title": post.Title, "Post": post})
}

func (h *Handler) editPostForm(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	ctx := c.Request.Context()
	post, err := h.repos.Posts.Get(ctx, id)
	if err != nil {
		h.fail(c, err)
		return
	}
	tags, err := h.repos.Tags.List(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "posts/edit", gin.H{"Title": "Edit Post", "Post": post, "Tags": tags})
}

func (h *Handler) updatePost(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	var fields repository.PostFields
	if err := bindForm(c, &fields); err != nil {
		h.fail(c, err)
		return
	}
	if _, err := h.repos.Posts.Update(c.Request.Context(), id, fields); err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/posts/%d", id))
}

func (h *Handler) deletePost(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	post, err := h.repos.Posts.Delete(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/users/%d", post.AuthorID))
}
