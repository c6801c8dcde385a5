package http

import (
	"comment-srv/pkg/response"
	"comment-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// @Summary List active toasts
// @Tags Notifications
// @Produce json
// @Success 200 {array} toastResp
// @Router /api/v1/notifications [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	o, err := h.uc.List(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "notification.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newToastsResp(o))
}

// @Summary Push a toast
// @Tags Notifications
// @Accept json
// @Produce json
// @Param body body pushReq true "Toast"
// @Success 200 {object} toastResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/notifications [post]
func (h *handler) Push(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processPushRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Push(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "notification.delivery.http.Push: usecase Push failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newToastResp(o))
}

// @Summary Dismiss a toast
// @Tags Notifications
// @Produce json
// @Param toast_id path string true "Toast ID"
// @Success 200 {object} response.Resp
// @Router /api/v1/notifications/{toast_id} [delete]
func (h *handler) Dismiss(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	if err := h.uc.Dismiss(ctx, sc, c.Param("toast_id")); err != nil {
		h.l.Errorf(ctx, "notification.delivery.http.Dismiss: usecase Dismiss failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}
