package http

import (
	"comment-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.GET("/comments/:comment_id/replies", h.ListThread)

		composer := api.Group("/composer")
		composer.GET("", h.Get)
		composer.DELETE("", h.Cancel)
		composer.POST("/open", h.Open)
		composer.POST("/intent", h.ChangeIntent)
		composer.POST("/suggestion", h.SelectSuggestion)
		composer.PUT("/buffer", h.Edit)
		composer.POST("/tools", h.ApplyTool)
		composer.POST("/suggest", h.Suggest)
		composer.POST("/submit", h.Submit)
	}
}
