package http

import (
	"comment-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.GET("/comments", h.List)
		api.POST("/comments/load-more", h.LoadMore)
		api.POST("/comments/bulk-actions", h.BulkAct)
		api.GET("/comments/:comment_id", h.Detail)
		api.POST("/comments/:comment_id/actions", h.Act)
	}
}

func (h *handler) RegisterInternalRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	internal := r.Group("/internal/v1")
	internal.Use(mw.ServiceAuth())
	{
		internal.POST("/comments/ingest", h.Ingest)
	}
}
