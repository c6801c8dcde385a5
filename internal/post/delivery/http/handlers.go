package http

import (
	"comment-srv/internal/post"
	"comment-srv/pkg/response"
	"comment-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// @Summary Preview the post of a comment
// @Description found=false without error when nothing is selected or the post is gone
// @Tags Posts
// @Produce json
// @Param comment_id query string false "Selected comment"
// @Success 200 {object} previewResp
// @Router /api/v1/posts/preview [get]
func (h *handler) Preview(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	o, err := h.uc.Preview(ctx, sc, post.PreviewInput{CommentID: c.Query("comment_id")})
	if err != nil {
		h.l.Errorf(ctx, "post.delivery.http.Preview: usecase Preview failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newPreviewResp(o))
}

// @Summary Get post
// @Tags Posts
// @Produce json
// @Param post_id path string true "Post ID"
// @Success 200 {object} postResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/posts/{post_id} [get]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	o, err := h.uc.Get(ctx, sc, c.Param("post_id"))
	if err != nil {
		h.l.Errorf(ctx, "post.delivery.http.Get: usecase Get failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newPostResp(o))
}
