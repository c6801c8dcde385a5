package http

import (
	"comment-srv/internal/reply"
	"comment-srv/pkg/response"
	"comment-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) respondDraft(c *gin.Context, fn string, d reply.Draft, err error) {
	if err != nil {
		h.l.Errorf(c.Request.Context(), "reply.delivery.http.%s: usecase %s failed: %v", fn, fn, err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}
	response.OK(c, newDraftResp(d))
}

// @Summary Open the reply composer
// @Description More than one comment opens a bulk reply. from_selection replies to the stored dashboard selection instead of comment_ids
// @Tags Composer
// @Accept json
// @Produce json
// @Param body body openReq true "Recipients"
// @Success 200 {object} draftResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Router /api/v1/composer/open [post]
func (h *handler) Open(c *gin.Context) {
	req, sc, err := h.processOpenRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}
	d, err := h.uc.Open(c.Request.Context(), sc, req.toInput())
	h.respondDraft(c, "Open", d, err)
}

// @Summary Get the current draft
// @Tags Composer
// @Produce json
// @Success 200 {object} draftResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/composer [get]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	d, err := h.uc.Get(ctx, scope.GetScopeFromContext(ctx))
	h.respondDraft(c, "Get", d, err)
}

// @Summary Change reply intent
// @Description Resets the suggestion and buffer, discarding edits
// @Tags Composer
// @Accept json
// @Produce json
// @Param body body intentReq true "thank, clarify, redirect or acknowledge"
// @Success 200 {object} draftResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/composer/intent [post]
func (h *handler) ChangeIntent(c *gin.Context) {
	req, sc, err := h.processIntentRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}
	d, err := h.uc.ChangeIntent(c.Request.Context(), sc, reply.Intent(req.Intent))
	h.respondDraft(c, "ChangeIntent", d, err)
}

// @Summary Pick a suggestion
// @Tags Composer
// @Accept json
// @Produce json
// @Param body body suggestionReq true "Suggestion index"
// @Success 200 {object} draftResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/composer/suggestion [post]
func (h *handler) SelectSuggestion(c *gin.Context) {
	req, sc, err := h.processSuggestionRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}
	d, err := h.uc.SelectSuggestion(c.Request.Context(), sc, *req.Index)
	h.respondDraft(c, "SelectSuggestion", d, err)
}

// @Summary Replace the reply text
// @Tags Composer
// @Accept json
// @Produce json
// @Param body body bufferReq true "Reply text"
// @Success 200 {object} draftResp
// @Router /api/v1/composer/buffer [put]
func (h *handler) Edit(c *gin.Context) {
	req, sc, err := h.processBufferRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}
	d, err := h.uc.Edit(c.Request.Context(), sc, req.Text)
	h.respondDraft(c, "Edit", d, err)
}

// @Summary Apply an editing tool
// @Description rephrase, shorten, expand, casual or professional. Tools stack.
// @Tags Composer
// @Accept json
// @Produce json
// @Param body body toolReq true "Tool"
// @Success 200 {object} draftResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/composer/tools [post]
func (h *handler) ApplyTool(c *gin.Context) {
	req, sc, err := h.processToolRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}
	d, err := h.uc.ApplyTool(c.Request.Context(), sc, reply.Tool(req.Tool))
	h.respondDraft(c, "ApplyTool", d, err)
}

// @Summary Personalise suggestions
// @Description Uses the creator profile; falls back to the canned list
// @Tags Composer
// @Produce json
// @Success 200 {object} draftResp
// @Router /api/v1/composer/suggest [post]
func (h *handler) Suggest(c *gin.Context) {
	ctx := c.Request.Context()
	d, err := h.uc.Suggest(ctx, scope.GetScopeFromContext(ctx))
	h.respondDraft(c, "Suggest", d, err)
}

// @Summary Send the reply
// @Tags Composer
// @Produce json
// @Success 200 {object} submitResp
// @Failure 400 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/composer/submit [post]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	o, err := h.uc.Submit(ctx, scope.GetScopeFromContext(ctx))
	if err != nil {
		h.l.Errorf(ctx, "reply.delivery.http.Submit: usecase Submit failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newSubmitResp(o))
}

// @Summary Close the composer
// @Tags Composer
// @Produce json
// @Success 200 {object} response.Resp
// @Router /api/v1/composer [delete]
func (h *handler) Cancel(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Cancel(ctx, scope.GetScopeFromContext(ctx)); err != nil {
		h.l.Errorf(ctx, "reply.delivery.http.Cancel: usecase Cancel failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}

// @Summary List replies of a comment
// @Tags Comments
// @Produce json
// @Param comment_id path string true "Comment ID"
// @Success 200 {object} threadResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/comments/{comment_id}/replies [get]
func (h *handler) ListThread(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("comment_id")

	replies, err := h.uc.ListThread(ctx, scope.GetScopeFromContext(ctx), id)
	if err != nil {
		h.l.Errorf(ctx, "reply.delivery.http.ListThread: usecase ListThread failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newThreadResp(id, replies))
}
