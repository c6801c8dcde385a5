package http

import (
	"comment-srv/internal/model"
	"comment-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// bindJSON binds the body into req and returns the caller scope.
func bindJSON[T any](h *handler, c *gin.Context, fn string) (T, model.Scope, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "reply.delivery.http.%s: ShouldBindJSON failed: %v", fn, err)
		return req, model.Scope{}, errWrongBody
	}
	return req, scope.GetScopeFromContext(c.Request.Context()), nil
}

func (h *handler) processOpenRequest(c *gin.Context) (openReq, model.Scope, error) {
	return bindJSON[openReq](h, c, "processOpenRequest")
}

func (h *handler) processIntentRequest(c *gin.Context) (intentReq, model.Scope, error) {
	return bindJSON[intentReq](h, c, "processIntentRequest")
}

func (h *handler) processSuggestionRequest(c *gin.Context) (suggestionReq, model.Scope, error) {
	return bindJSON[suggestionReq](h, c, "processSuggestionRequest")
}

func (h *handler) processBufferRequest(c *gin.Context) (bufferReq, model.Scope, error) {
	return bindJSON[bufferReq](h, c, "processBufferRequest")
}

func (h *handler) processToolRequest(c *gin.Context) (toolReq, model.Scope, error) {
	return bindJSON[toolReq](h, c, "processToolRequest")
}
