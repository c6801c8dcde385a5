package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"comment-srv/internal/model"
	"comment-srv/internal/post"
	"comment-srv/internal/post/mocks"
	"comment-srv/pkg/log"
	"comment-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
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
	r.GET("/posts/preview", h.Preview)
	r.GET("/posts/:post_id", h.Get)
	return r, uc
}

func TestPreview(t *testing.T) {
	r, uc := newTestRouter(t)
	uc.On("Preview", mock.Anything, testScope, post.PreviewInput{}).
		Return(post.PreviewOutput{Message: post.NoSelectionMessage}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/posts/preview", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"found":false`)
	assert.Contains(t, w.Body.String(), "Select a comment")
	assert.NotContains(t, w.Body.String(), `"post"`)
}

func TestGetNotFound(t *testing.T) {
	r, uc := newTestRouter(t)
	uc.On("Get", mock.Anything, testScope, "p-9").Return(model.Post{}, post.ErrNotFound)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/posts/p-9", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
