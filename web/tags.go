package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studieren/blogly/repository"
)

func (h *Handler) listTags(c *gin.Context) {
	tags, err := h.repos.Tags.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "tags/index", gin.H{"Title": "Tags", "Tags": tags})
}

func (h *Handler) newTagForm(c *gin.Context) {
	posts, err := h.repos.Posts.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "tags/new", gin.H{"Title": "Create a tag", "Posts": posts})
}

func (h *Handler) createTag(c *gin.Context) {
	var fields repository.TagFields
	if err := bindForm(c, &fields); err != nil {
		h.fail(c, err)
		return
	}
	if _, err := h.repos.Tags.Create(c.Request.Context(), fields); err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/tags")
}

func (h *Handler) showTag(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	tag, err := h.repos.Tags.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "tags/detail", gin.H{"Title": tag.Name, "Tag": tag})
}

func (h *Handler) editTagForm(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	ctx := c.Request.Context()
	tag, err := h.repos.Tags.Get(ctx, id)
	if err != nil {
		h.fail(c, err)
		return
	}
	posts, err := h.repos.Posts.List(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "tags/edit", gin.H{"Title": "Edit a tag", "Tag": tag, "Posts": posts})
}

func (h *Handler) updateTag(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	var fields repository.TagFields
	if err := bindForm(c, &fields); err != nil {
		h.fail(c, err)
		return
	}
	if _, err := h.repos.Tags.Update(c.Request.Context(), id, fields); err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/tags")
}

func (h *Handler) deleteTag(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	if err := h.repos.Tags.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/tags")
}
