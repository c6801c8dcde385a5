package http

import (
	"comment-srv/internal/comment"
	"comment-srv/internal/middleware"
	"comment-srv/pkg/discord"
	"comment-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for the comment HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
	RegisterInternalRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      comment.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc comment.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
