package middleware

import (
	"strings"

	"comment-srv/pkg/response"
	"comment-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Auth resolves the caller from the Authorization header, falling back to
// the auth cookie, and stores the caller's scope on the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			token, _ = c.Cookie(m.cookieName)
		}
		if token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		payload, err := m.jwtManager.Verify(token)
		if err != nil {
			m.l.Debugf(c.Request.Context(), "middleware.Auth: Verify failed: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		ctx := scope.SetScopeToContext(c.Request.Context(), scope.NewScope(payload))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// bearerToken accepts "Bearer <token>" or the raw token.
func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if rest, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(rest)
	}
	return header
}
