package middleware

import (
	"comment-srv/pkg/discord"
	"comment-srv/pkg/log"
	"comment-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery turns a handler panic into a 500 and reports it to Discord when configured.
func Recovery(l log.Logger, d discord.IDiscord) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		l.Errorf(c.Request.Context(), "middleware.Recovery: %v | %s %s",
			recovered, c.Request.Method, c.Request.URL.Path)
		response.PanicError(c, recovered, d)
		c.Abort()
	})
}
