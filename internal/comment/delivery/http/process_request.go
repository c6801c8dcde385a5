package http

import (
	"comment-srv/internal/model"
	"comment-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processListRequest(c *gin.Context) (listReq, model.Scope, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "comment.delivery.http.processListRequest: ShouldBindQuery failed: %v", err)
		return req, model.Scope{}, errWrongQuery
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processLoadMoreRequest(c *gin.Context) (loadMoreReq, model.Scope, error) {
	var req loadMoreReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "comment.delivery.http.processLoadMoreRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, errWrongBody
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processDetailRequest(c *gin.Context) (string, model.Scope, error) {
	sc := scope.GetScopeFromContext(c.Request.Context())
	return c.Param("comment_id"), sc, nil
}

func (h *handler) processActRequest(c *gin.Context) (actReq, model.Scope, error) {
	var req actReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "comment.delivery.http.processActRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, errWrongBody
	}
	req.CommentID = c.Param("comment_id")

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processBulkActRequest(c *gin.Context) (bulkActReq, model.Scope, error) {
	var req bulkActReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "comment.delivery.http.processBulkActRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, errWrongBody
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

// processIngestRequest takes the user from the forwarded scope header, or from the body when none was sent.
func (h *handler) processIngestRequest(c *gin.Context) (ingestReq, model.Scope, error) {
	var req ingestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "comment.delivery.http.processIngestRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, errWrongBody
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	if sc.UserID == "" {
		sc = model.Scope{UserID: req.UserID}
	}
	if sc.UserID == "" {
		return req, model.Scope{}, errUserRequired
	}
	if sc.Role == "" {
		sc.Role = c.GetString("service_name")
	}
	return req, sc, nil
}
