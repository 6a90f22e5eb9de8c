package web

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studieren/blogly/repository"
)

const recentPostsLimit = 5

func (h *Handler) listUsers(c *gin.Context) {
	ctx := c.Request.Context()
	users, err := h.repos.Users.List(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}
	recent, err := h.repos.Posts.Recent(ctx, recentPostsLimit)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "users/index", gin.H{
		"Title":  "Users",
		"Users":  users,
		"Recent": recent,
	})
}

func (h *Handler) newUserForm(c *gin.Context) {
	c.HTML(http.StatusOK, "users/new", gin.H{"Title": "Create a user"})
}

func (h *Handler) createUser(c *gin.Context) {
	var fields repository.UserFields
	if err := bindForm(c, &fields); err != nil {
		h.fail(c, err)
		return
	}
	if _, err := h.repos.Users.Create(c.Request.Context(), fields); err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/users")
}

func (h *Handler) showUser(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	user, err := h.repos.Users.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "users/detail", gin.H{"Title": user.FullName(), "User": user})
}

func (h *Handler) editUserForm(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	user, err := h.repos.Users.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "users/edit", gin.H{"Title": "Edit User", "User": user})
}

func (h *Handler) updateUser(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	var fields repository.UserFields
	if err := bindForm(c, &fields); err != nil {
		h.fail(c, err)
		return
	}
	if _, err := h.repos.Users.Update(c.Request.Context(), id, fields); err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/users")
}

func (h *Handler) deleteUser(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	if err := h.repos.Users.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/users")
}

// newPostForm needs the author plus every tag for the checkboxes.
func (h *Handler) newPostForm(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	ctx := c.Request.Context()
	user, err := h.repos.Users.Get(ctx, id)
	if err != nil {
		h.fail(c, err)
		return
	}
	tags, err := h.repos.Tags.List(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "posts/new", gin.H{
		"Title": "Add Post for " + user.FullName(),
		"User":  user,
		"Tags":  tags,
	})
}

func (h *Handler) createPost(c *gin.Context) {
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
	post, err := h.repos.Posts.Create(c.Request.Context(), id, fields)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/users/%d", post.AuthorID))
}
