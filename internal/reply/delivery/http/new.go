package http

import (
	"comment-srv/internal/middleware"
	"comment-srv/internal/reply"
	"comment-srv/pkg/discord"
	"comment-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for the reply composer HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      reply.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc reply.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
