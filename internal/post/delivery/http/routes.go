package http

import (
	"comment-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.GET("/posts/preview", h.Preview)
		api.GET("/posts/:post_id", h.Get)
	}
}
