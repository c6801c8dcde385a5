package http

import (
	"comment-srv/internal/model"
	"comment-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func bindJSON[T any](h *handler, c *gin.Context, fn string) (T, model.Scope, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "dashboard.delivery.http.%s: ShouldBindJSON failed: %v", fn, err)
		return req, model.Scope{}, errWrongBody
	}
	return req, scope.GetScopeFromContext(c.Request.Context()), nil
}

func (h *handler) processFiltersRequest(c *gin.Context) (filtersReq, model.Scope, error) {
	return bindJSON[filtersReq](h, c, "processFiltersRequest")
}

func (h *handler) processFilterRequest(c *gin.Context) (filterReq, model.Scope, error) {
	return bindJSON[filterReq](h, c, "processFilterRequest")
}

func (h *handler) processSelectionRequest(c *gin.Context) (selectionReq, model.Scope, error) {
	return bindJSON[selectionReq](h, c, "processSelectionRequest")
}

func (h *handler) processNavigateRequest(c *gin.Context) (navigateReq, model.Scope, error) {
	return bindJSON[navigateReq](h, c, "processNavigateRequest")
}

func (h *handler) processBulkActRequest(c *gin.Context) (bulkActReq, model.Scope, error) {
	return bindJSON[bulkActReq](h, c, "processBulkActRequest")
}
