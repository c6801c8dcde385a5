package http

import (
	"comment-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/dashboard")
	api.Use(mw.Auth())
	{
		api.GET("/session", h.GetSession)
		api.GET("/catalog", h.Catalog)

		api.PATCH("/filters", h.UpdateFilters)
		api.POST("/filters/toggle", h.ToggleFilter)
		api.POST("/filters/clear", h.ClearFilter)
		api.DELETE("/filters", h.ClearAllFilters)

		api.POST("/selection/toggle", h.ToggleSelection)
		api.POST("/selection/toggle-all", h.ToggleSelectAll)
		api.DELETE("/selection", h.ClearSelection)

		api.POST("/navigate", h.Navigate)
		api.POST("/bulk-actions", h.BulkAct)
	}
}
