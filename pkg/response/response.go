package response

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"comment-srv/pkg/discord"
	pkgErrors "comment-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 with data wrapped in the standard envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	})
}

// Error renders err. HTTPError and ValidationError are rendered as-is,
// everything else becomes a 500 and is reported to Discord when configured.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	var valErr *pkgErrors.ValidationError
	if errors.As(err, &valErr) {
		c.JSON(http.StatusBadRequest, Resp{
			ErrorCode: CodeValidation,
			Message:   MessageValidation,
			Errors:    valErr.Fields,
		})
		return
	}

	reportToDiscord(c.Request.Context(), d, c, err)
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: CodeInternal,
		Message:   MessageInternal,
	})
}

// Unavailable writes a 503 with details, used by readiness probes.
func Unavailable(c *gin.Context, details any) {
	c.JSON(http.StatusServiceUnavailable, Resp{
		ErrorCode: CodeUnavailable,
		Message:   MessageUnavailable,
		Errors:    details,
	})
}

// Unauthorized writes a 401.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: CodeUnauthorized,
		Message:   MessageUnauthorized,
	})
}

// Forbidden writes a 403.
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Resp{
		ErrorCode: CodeForbidden,
		Message:   MessageForbidden,
	})
}

// PanicError renders a recovered panic as a 500.
func PanicError(c *gin.Context, rec any, d discord.IDiscord) {
	reportToDiscord(c.Request.Context(), d, c, fmt.Errorf("panic: %v", rec))
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: CodeInternal,
		Message:   MessageInternal,
	})
}

func reportToDiscord(ctx context.Context, d discord.IDiscord, c *gin.Context, err error) {
	if d == nil {
		return
	}
	title := fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path)
	go func() {
		_ = d.SendError(context.WithoutCancel(ctx), title, "request failed", err)
	}()
}
