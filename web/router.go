// Package web serves the blogly HTML interface over gin.
package web

import (
	"html/template"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/studieren/blogly/gormtool"
	"github.com/studieren/blogly/repository"
)

type Options struct {
	CORSOrigins []string
}

type Handler struct {
	repos  *repository.Repositories
	tool   *gormtool.CRUDTool
	logger gormtool.Logger
}

func NewHandler(repos *repository.Repositories, tool *gormtool.CRUDTool) *Handler {
	return &Handler{repos: repos, tool: tool, logger: tool.Logger}
}

// NewRouter wires every route onto a fresh gin engine.
func NewRouter(h *Handler, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(requestLogger(h.logger), gin.Recovery())
	r.Use(corsMiddleware(opts.CORSOrigins))
	r.SetHTMLTemplate(template.Must(parseTemplates()))
	r.NoRoute(func(c *gin.Context) {
		h.fail(c, repository.ErrNotFound)
	})

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/users")
	})
	r.GET("/healthz", h.healthz)
	r.GET("/metrics", h.metrics)

	users := r.Group("/users")
	users.GET("", h.listUsers)
	users.GET("/new", h.newUserForm)
	users.POST("/new", h.createUser)
	users.GET("/:id", h.showUser)
	users.GET("/:id/edit", h.editUserForm)
	users.POST("/:id/edit", h.updateUser)
	users.POST("/:id/delete", h.deleteUser)
	users.GET("/:id/posts/new", h.newPostForm)
	users.POST("/:id/posts/new", h.createPost)

	posts := r.Group("/posts")
	posts.GET("/:id", h.showPost)
	posts.GET("/:id/edit", h.editPostForm)
	posts.POST("/:id/edit", h.updatePost)
	posts.POST("/:id/delete", h.deletePost)

	tags := r.Group("/tags")
	tags.GET("", h.listTags)
	tags.GET("/new", h.newTagForm)
	tags.POST("/new", h.createTag)
	tags.GET("/:id", h.showTag)
	tags.GET("/:id/edit", h.editTagForm)
	tags.POST("/:id/edit", h.updateTag)
	tags.POST("/:id/delete", h.deleteTag)

	return r
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		return cors.Default()
	}
	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = origins
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodHead}
	return cors.New(cfg)
}
