package http

import (
	"comment-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.GET("/notifications", h.List)
		api.POST("/notifications", h.Push)
		api.DELETE("/notifications/:toast_id", h.Dismiss)
	}
}
