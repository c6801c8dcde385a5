package http

import (
	"comment-srv/pkg/response"
	"comment-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// @Summary Get onboarding progress
// @Tags Onboarding
// @Produce json
// @Success 200 {object} progressResp
// @Failure 503 {object} response.Resp
// @Router /api/v1/onboarding [get]
func (h *handler) GetProgress(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	o, err := h.uc.GetProgress(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "onboarding.delivery.http.GetProgress: usecase GetProgress failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newProgressResp(o))
}

// @Summary Save profile
// @Description Saves the creator persona and moves past profile setup
// @Tags Onboarding
// @Accept json
// @Produce json
// @Param body body saveProfileReq true "Profile"
// @Success 200 {object} progressResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/onboarding/profile [put]
func (h *handler) SaveProfile(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processSaveProfileRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.SaveProfile(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "onboarding.delivery.http.SaveProfile: usecase SaveProfile failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newProgressResp(o))
}

// @Summary Upload avatar
// @Tags Onboarding
// @Accept multipart/form-data
// @Produce json
// @Param avatar formData file true "Image"
// @Success 200 {object} progressResp
// @Failure 400 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Router /api/v1/onboarding/avatar [post]
func (h *handler) UploadAvatar(c *gin.Context) {
	ctx := c.Request.Context()

	req, closeFile, sc, err := h.processUploadAvatarRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}
	defer closeFile()

	o, err := h.uc.UploadAvatar(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "onboarding.delivery.http.UploadAvatar: usecase UploadAvatar failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newProgressResp(o))
}

// @Summary Toggle platform connection
// @Tags Onboarding
// @Accept json
// @Produce json
// @Param body body togglePlatformReq true "Platform"
// @Success 200 {object} progressResp
// @Failure 400 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Router /api/v1/onboarding/platforms/toggle [post]
func (h *handler) TogglePlatform(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processTogglePlatformRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.TogglePlatform(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "onboarding.delivery.http.TogglePlatform: usecase TogglePlatform failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newProgressResp(o))
}

// @Summary Continue to the next onboarding step
// @Tags Onboarding
// @Produce json
// @Success 200 {object} progressResp
// @Failure 409 {object} response.Resp
// @Router /api/v1/onboarding/continue [post]
func (h *handler) Continue(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	o, err := h.uc.Continue(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "onboarding.delivery.http.Continue: usecase Continue failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newProgressResp(o))
}
