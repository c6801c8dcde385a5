package middleware

import (
	"strings"

	"comment-srv/pkg/response"
	"comment-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

const (
	headerServiceKey = "X-Service-Key"
	ctxServiceName   = "service_name"
)

// ServiceAuth guards internal routes. The header carries an encrypted
// "service:key" pair; key is checked against that service's bcrypt hash.
func (m Middleware) ServiceAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		sealed := c.GetHeader(headerServiceKey)
		if sealed == "" || m.encrypter == nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		plain, err := m.encrypter.Decrypt(sealed)
		if err != nil {
			m.l.Warnf(ctx, "middleware.ServiceAuth: Decrypt failed: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		service, key, ok := strings.Cut(plain, ":")
		hash, known := m.serviceKeys[service]
		if !ok || !known || !m.encrypter.Verify(key, hash) {
			// never log the key itself
			m.l.Warnf(ctx, "middleware.ServiceAuth: rejected service %q", service)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(ctxServiceName, service)

		// Callers acting for a user forward that user's scope.
		if h := c.GetHeader(scope.Header); h != "" {
			sc, err := scope.DecodeHeader(h)
			if err != nil {
				m.l.Warnf(ctx, "middleware.ServiceAuth: DecodeHeader failed for service %q: %v", service, err)
				response.Unauthorized(c)
				c.Abort()
				return
			}
			c.Request = c.Request.WithContext(scope.SetScopeToContext(ctx, sc))
		}
		c.Next()
	}
}
