package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"comment-srv/internal/model"
	"comment-srv/internal/notification"
	"comment-srv/internal/notification/mocks"
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
	r.GET("/notifications", h.List)
	r.POST("/notifications", h.Push)
	r.DELETE("/notifications/:toast_id", h.Dismiss)
	return r, uc
}

func TestPush(t *testing.T) {
	tcs := map[string]struct {
		body string
		err  error
		code int
	}{
		"ok":             {body: `{"title":"Reply Sent"}`, code: http.StatusOK},
		"no title":       {body: `{"title":""}`, err: notification.ErrTitleRequired, code: http.StatusBadRequest},
		"bad variant":    {body: `{"title":"x","variant":"green"}`, err: notification.ErrInvalidVariant, code: http.StatusBadRequest},
		"malformed json": {body: `{`, code: http.StatusBadRequest},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			r, uc := newTestRouter(t)
			if name != "malformed json" {
				uc.On("Push", mock.Anything, testScope, mock.Anything).Return(model.Toast{ID: "abc1234"}, tc.err)
			}

			req := httptest.NewRequest(http.MethodPost, "/notifications", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func TestListAndDismiss(t *testing.T) {
	r, uc := newTestRouter(t)
	uc.On("List", mock.Anything, testScope).Return([]model.Toast{{ID: "abc1234", Title: "Comment archived"}}, nil)
	uc.On("Dismiss", mock.Anything, testScope, "abc1234").Return(nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notifications", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Comment archived")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/notifications/abc1234", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
