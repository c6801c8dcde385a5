package http

import (
	"comment-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/onboarding")
	api.Use(mw.Auth())
	{
		api.GET("", h.GetProgress)
		api.PUT("/profile", h.SaveProfile)
		api.POST("/avatar", h.UploadAvatar)
		api.POST("/platforms/toggle", h.TogglePlatform)
		api.POST("/continue", h.Continue)
	}
}
