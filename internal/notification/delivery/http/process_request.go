package http

import (
	"comment-srv/internal/model"
	"comment-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processPushRequest(c *gin.Context) (pushReq, model.Scope, error) {
	var req pushReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "notification.delivery.http.processPushRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, errWrongBody
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
