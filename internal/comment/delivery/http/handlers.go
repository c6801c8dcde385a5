package http

import (
	"comment-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary List comments
// @Description One page of the filtered comment feed
// @Tags Comments
// @Produce json
// @Param search query string false "Case-insensitive text search"
// @Param status query string false "all, flagged, attention or archived"
// @Param platform query []string false "Platforms" collectionFormat(multi)
// @Param emotion query []string false "Emotions" collectionFormat(multi)
// @Param sentiment query []string false "Sentiments" collectionFormat(multi)
// @Param category query []string false "Categories" collectionFormat(multi)
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Success 200 {object} listResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/comments [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "comment.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListResp(o))
}

// @Summary Load more comments
// @Description Next slice of the infinite feed, capped at 50 comments
// @Tags Comments
// @Accept json
// @Produce json
// @Param body body loadMoreReq true "Criteria and loaded count"
// @Success 200 {object} loadMoreResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/comments/load-more [post]
func (h *handler) LoadMore(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processLoadMoreRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.LoadMore(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "comment.delivery.http.LoadMore: usecase LoadMore failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newLoadMoreResp(o))
}

// @Summary Get comment
// @Tags Comments
// @Produce json
// @Param comment_id path string true "Comment ID"
// @Success 200 {object} commentResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/comments/{comment_id} [get]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, _ := h.processDetailRequest(c)

	o, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "comment.delivery.http.Detail: usecase Detail failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newCommentResp(o))
}

// @Summary Apply a comment action
// @Description flag, archive, save, important or delete
// @Tags Comments
// @Accept json
// @Produce json
// @Param comment_id path string true "Comment ID"
// @Param body body actReq true "Action"
// @Success 200 {object} actResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/comments/{comment_id}/actions [post]
func (h *handler) Act(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processActRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Act(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "comment.delivery.http.Act: usecase Act failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newActResp(o))
}

// @Summary Bulk comment action
// @Description archive or save a set of comments
// @Tags Comments
// @Accept json
// @Produce json
// @Param body body bulkActReq true "Ids and action"
// @Success 200 {object} bulkActResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/comments/bulk-actions [post]
func (h *handler) BulkAct(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processBulkActRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.BulkAct(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "comment.delivery.http.BulkAct: usecase BulkAct failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newBulkActResp(o))
}

// @Summary Ingest platform comments
// @Description Internal endpoint used by platform collectors
// @Tags Internal
// @Accept json
// @Produce json
// @Param X-Service-Key header string true "Encrypted service key"
// @Param body body ingestReq true "Comments and posts"
// @Success 200 {object} ingestResp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /internal/v1/comments/ingest [post]
func (h *handler) Ingest(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processIngestRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Ingest(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "comment.delivery.http.Ingest: usecase Ingest failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, ingestResp{Comments: o.Comments, Posts: o.Posts})
}
