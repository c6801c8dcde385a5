package http

import (
	"comment-srv/internal/comment"
	"comment-srv/internal/dashboard"
	"comment-srv/pkg/response"
	"comment-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) respondSession(c *gin.Context, fn string, s dashboard.Session, err error) {
	if err != nil {
		h.l.Errorf(c.Request.Context(), "dashboard.delivery.http.%s: usecase %s failed: %v", fn, fn, err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}
	response.OK(c, newSessionResp(s))
}

// @Summary Get dashboard session
// @Description Filters, selection, focused row and composer state of the caller
// @Tags Dashboard
// @Produce json
// @Success 200 {object} sessionResp
// @Failure 503 {object} response.Resp
// @Router /api/v1/dashboard/session [get]
func (h *handler) GetSession(c *gin.Context) {
	ctx := c.Request.Context()
	s, err := h.uc.GetSession(ctx, scope.GetScopeFromContext(ctx))
	h.respondSession(c, "GetSession", s, err)
}

// @Summary Update filters
// @Description Absent fields are kept, an empty list clears that dimension
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param body body filtersReq true "Partial criteria"
// @Success 200 {object} sessionResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/dashboard/filters [patch]
func (h *handler) UpdateFilters(c *gin.Context) {
	req, sc, err := h.processFiltersRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}
	s, err := h.uc.UpdateFilters(c.Request.Context(), sc, req.toPatch())
	h.respondSession(c, "UpdateFilters", s, err)
}

// @Summary Toggle a filter value
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param body body filterReq true "Dimension and value"
// @Success 200 {object} sessionResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/dashboard/filters/toggle [post]
func (h *handler) ToggleFilter(c *gin.Context) {
	req, sc, err := h.processFilterRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}
	s, err := h.uc.ToggleFilter(c.Request.Context(), sc, req.toInput())
	h.respondSession(c, "ToggleFilter", s, err)
}

// @Summary Remove one active filter
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param body body filterReq true "Dimension and value"
// @Success 200 {object} sessionResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/dashboard/filters/clear [post]
func (h *handler) ClearFilter(c *gin.Context) {
	req, sc, err := h.processFilterRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}
	s, err := h.uc.ClearFilter(c.Request.Context(), sc, req.toInput())
	h.respondSession(c, "ClearFilter", s, err)
}

// @Summary Reset all filters
// @Tags Dashboard
// @Produce json
// @Success 200 {object} sessionResp
// @Router /api/v1/dashboard/filters [delete]
func (h *handler) ClearAllFilters(c *gin.Context) {
	ctx := c.Request.Context()
	s, err := h.uc.ClearAllFilters(ctx, scope.GetScopeFromContext(ctx))
	h.respondSession(c, "ClearAllFilters", s, err)
}

// @Summary Toggle a comment in the selection
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param body body selectionReq true "Comment ID"
// @Success 200 {object} sessionResp
// @Router /api/v1/dashboard/selection/toggle [post]
func (h *handler) ToggleSelection(c *gin.Context) {
	req, sc, err := h.processSelectionRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}
	s, err := h.uc.ToggleSelection(c.Request.Context(), sc, req.CommentID)
	h.respondSession(c, "ToggleSelection", s, err)
}

// @Summary Select or unselect every visible comment
// @Tags Dashboard
// @Produce json
// @Success 200 {object} sessionResp
// @Router /api/v1/dashboard/selection/toggle-all [post]
func (h *handler) ToggleSelectAll(c *gin.Context) {
	ctx := c.Request.Context()
	s, err := h.uc.ToggleSelectAll(ctx, scope.GetScopeFromContext(ctx))
	h.respondSession(c, "ToggleSelectAll", s, err)
}

// @Summary Clear the selection
// @Tags Dashboard
// @Produce json
// @Success 200 {object} sessionResp
// @Router /api/v1/dashboard/selection [delete]
func (h *handler) ClearSelection(c *gin.Context) {
	ctx := c.Request.Context()
	s, err := h.uc.ClearSelection(ctx, scope.GetScopeFromContext(ctx))
	h.respondSession(c, "ClearSelection", s, err)
}

// @Summary Feed keyboard navigation
// @Description ArrowDown, ArrowUp, Enter or Escape
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param body body navigateReq true "Key"
// @Success 200 {object} navigateResp
// @Failure 400 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Router /api/v1/dashboard/navigate [post]
func (h *handler) Navigate(c *gin.Context) {
	req, sc, err := h.processNavigateRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	ctx := c.Request.Context()
	o, err := h.uc.Navigate(ctx, sc, dashboard.Key(req.Key))
	if err != nil {
		h.l.Errorf(ctx, "dashboard.delivery.http.Navigate: usecase Navigate failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newNavigateResp(o))
}

// @Summary Act on the selected comments
// @Description Clears the selection on success
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param body body bulkActReq true "flag, archive, save, important or delete"
// @Success 200 {object} bulkActResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/dashboard/bulk-actions [post]
func (h *handler) BulkAct(c *gin.Context) {
	req, sc, err := h.processBulkActRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	ctx := c.Request.Context()
	o, err := h.uc.BulkAct(ctx, sc, comment.Action(req.Action))
	if err != nil {
		h.l.Errorf(ctx, "dashboard.delivery.http.BulkAct: usecase BulkAct failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newBulkActResp(o))
}

// @Summary Sidebar catalog
// @Description Filter options with labels, icons and comment counts
// @Tags Dashboard
// @Produce json
// @Success 200 {object} catalogResp
// @Router /api/v1/dashboard/catalog [get]
func (h *handler) Catalog(c *gin.Context) {
	ctx := c.Request.Context()

	o, err := h.uc.Catalog(ctx, scope.GetScopeFromContext(ctx))
	if err != nil {
		h.l.Errorf(ctx, "dashboard.delivery.http.Catalog: usecase Catalog failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newCatalogResp(o))
}
