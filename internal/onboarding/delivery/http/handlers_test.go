package http

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"comment-srv/internal/model"
	"comment-srv/internal/onboarding"
	"comment-srv/internal/onboarding/mocks"
	"comment-srv/pkg/log"
	"comment-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testScope = model.Scope{UserID: "u-1"}

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.UseCase) {
	gin.SetMode(gin.TestMode)
	uc := mocks.NewUseCase(t)
	h := &handler{l: log.NewNop(), uc: uc}
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(scope.SetScopeToContext(c.Request.Context(), testScope))
	})
	r.GET("/onboarding", h.GetProgress)
	r.PUT("/onboarding/profile", h.SaveProfile)
	r.POST("/onboarding/avatar", h.UploadAvatar)
	r.POST("/onboarding/platforms/toggle", h.TogglePlatform)
	r.POST("/onboarding/continue", h.Continue)
	return r, uc
}

func progressAt(step model.OnboardingStep, connected ...model.Platform) onboarding.Progress {
	p := onboarding.Progress{
		Profile: model.Profile{UserID: "u-1", Name: "Ana", Tone: model.ToneFriendly, Step: step},
		Step:    step,
	}
	for _, pl := range model.Platforms {
		c := model.PlatformConnection{UserID: "u-1", Platform: pl}
		for _, want := range connected {
			if want == pl {
				c.Connected = true
			}
		}
		p.Connections = append(p.Connections, c)
	}
	return p
}

func TestGetProgress(t *testing.T) {
	r, uc := newTestRouter(t)
	uc.On("GetProgress", mock.Anything, testScope).
		Return(progressAt(model.StepPlatformConnect, model.PlatformYouTube), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/onboarding", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"step":"platform_connect"`)
	assert.Contains(t, w.Body.String(), `"connected_count":1`)
	assert.Contains(t, w.Body.String(), `"can_continue":true`)
}

func TestSaveProfile(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		r, _ := newTestRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/onboarding/profile", strings.NewReader(`{"tone":"witty"}`)))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("every invalid field reported", func(t *testing.T) {
		r, _ := newTestRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/onboarding/profile",
			strings.NewReader(`{"name":" ","tone":"rude","action_bias":"ignore"}`)))
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body struct {
			Errors []struct {
				Field string `json:"field"`
			} `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body.Errors, 3)
		assert.Equal(t, "action_bias", body.Errors[2].Field)
	})

	t.Run("store down", func(t *testing.T) {
		r, uc := newTestRouter(t)
		uc.On("SaveProfile", mock.Anything, testScope, onboarding.SaveProfileInput{Name: "Ana", Tone: "witty"}).
			Return(onboarding.Progress{}, onboarding.ErrStoreFailed)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/onboarding/profile", strings.NewReader(`{"name":"Ana","tone":"witty"}`)))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestUploadAvatar(t *testing.T) {
	t.Run("multipart file", func(t *testing.T) {
		r, uc := newTestRouter(t)
		uc.On("UploadAvatar", mock.Anything, testScope, mock.MatchedBy(func(in onboarding.UploadAvatarInput) bool {
			return in.Filename == "me.png" && in.ContentType == "image/png" && in.Size == 4
		})).Return(progressAt(model.StepPlatformConnect), nil)

		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition", `form-data; name="avatar"; filename="me.png"`)
		hdr.Set("Content-Type", "image/png")
		part, err := mw.CreatePart(hdr)
		require.NoError(t, err)
		_, _ = part.Write([]byte("\x89PNG"))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/onboarding/avatar", &body)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing file", func(t *testing.T) {
		r, _ := newTestRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/onboarding/avatar", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTogglePlatform(t *testing.T) {
	r, uc := newTestRouter(t)
	uc.On("TogglePlatform", mock.Anything, testScope, onboarding.TogglePlatformInput{Platform: "myspace"}).
		Return(onboarding.Progress{}, onboarding.ErrInvalidPlatform)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/onboarding/platforms/toggle", strings.NewReader(`{"platform":"myspace"}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContinueWithoutPlatforms(t *testing.T) {
	r, uc := newTestRouter(t)
	uc.On("Continue", mock.Anything, testScope).Return(onboarding.Progress{}, onboarding.ErrNoPlatformConnected)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/onboarding/continue", nil))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Connect at least one platform")
}
