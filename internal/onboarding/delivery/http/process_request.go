package http

import (
	"comment-srv/internal/model"
	"comment-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

const avatarFormField = "avatar"

func (h *handler) processSaveProfileRequest(c *gin.Context) (saveProfileReq, model.Scope, error) {
	var req saveProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "onboarding.delivery.http.processSaveProfileRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, errWrongBody
	}
	if err := req.validate(); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

// processUploadAvatarRequest opens the multipart file. The caller closes the returned func.
func (h *handler) processUploadAvatarRequest(c *gin.Context) (uploadAvatarReq, func(), model.Scope, error) {
	fh, err := c.FormFile(avatarFormField)
	if err != nil {
		h.l.Warnf(c.Request.Context(), "onboarding.delivery.http.processUploadAvatarRequest: FormFile failed: %v", err)
		return uploadAvatarReq{}, nil, model.Scope{}, errAvatarRequired
	}
	f, err := fh.Open()
	if err != nil {
		h.l.Warnf(c.Request.Context(), "onboarding.delivery.http.processUploadAvatarRequest: Open failed: %v", err)
		return uploadAvatarReq{}, nil, model.Scope{}, errAvatarRequired
	}

	req := uploadAvatarReq{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Reader:      f,
	}
	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, func() { _ = f.Close() }, sc, nil
}

func (h *handler) processTogglePlatformRequest(c *gin.Context) (togglePlatformReq, model.Scope, error) {
	var req togglePlatformReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "onboarding.delivery.http.processTogglePlatformRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, errWrongBody
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
