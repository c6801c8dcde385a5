package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"comment-srv/internal/comment"
	"comment-srv/internal/model"
	"comment-srv/internal/reply"
	"comment-srv/internal/reply/mocks"
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
	r.GET("/comments/:comment_id/replies", h.ListThread)
	r.GET("/composer", h.Get)
	r.DELETE("/composer", h.Cancel)
	r.POST("/composer/open", h.Open)
	r.POST("/composer/suggestion", h.SelectSuggestion)
	r.POST("/composer/tools", h.ApplyTool)
	r.POST("/composer/submit", h.Submit)
	return r, uc
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	r.ServeHTTP(w, req)
	return w
}

func TestOpen(t *testing.T) {
	r, uc := newTestRouter(t)
	uc.On("Open", mock.Anything, testScope, reply.OpenInput{CommentIDs: []string{"c-1", "c-2"}}).
		Return(reply.NewDraft([]string{"c-1", "c-2"}, false, ""), nil)

	w := serve(r, http.MethodPost, "/composer/open", `{"comment_ids":["c-1","c-2"]}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"bulk":true`)
	assert.Contains(t, w.Body.String(), `"recipient_count":2`)
	assert.Contains(t, w.Body.String(), `"stage":"reviewing"`)
}

func TestOpenFromSelectionWithoutIDs(t *testing.T) {
	r, uc := newTestRouter(t)
	uc.On("Open", mock.Anything, testScope, reply.OpenInput{FromSelection: true}).
		Return(reply.NewDraft([]string{"c-4"}, true, ""), nil)

	w := serve(r, http.MethodPost, "/composer/open", `{"from_selection":true}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"bulk":true`)
}

func TestOpenErrors(t *testing.T) {
	tcs := map[string]struct {
		body string
		err  error
		code int
	}{
		"bad body":       {body: `{`, code: http.StatusBadRequest},
		"no recipients":  {body: `{"comment_ids":[]}`, err: reply.ErrNoRecipients, code: http.StatusBadRequest},
		"unknown":        {body: `{"comment_ids":["zz"]}`, err: comment.ErrNotFound, code: http.StatusNotFound},
		"submit running": {body: `{"comment_ids":["c-1"]}`, err: reply.ErrAlreadySubmitting, code: http.StatusConflict},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			r, uc := newTestRouter(t)
			if tc.err != nil {
				uc.On("Open", mock.Anything, testScope, mock.Anything).Return(reply.Draft{}, tc.err)
			}
			w := serve(r, http.MethodPost, "/composer/open", tc.body)
			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func TestSelectSuggestionRequiresIndex(t *testing.T) {
	r, uc := newTestRouter(t)
	w := serve(r, http.MethodPost, "/composer/suggestion", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	uc.On("SelectSuggestion", mock.Anything, testScope, 0).Return(reply.NewDraft([]string{"c-1"}, false, ""), nil)
	w = serve(r, http.MethodPost, "/composer/suggestion", `{"index":0}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetWithoutDraft(t *testing.T) {
	r, uc := newTestRouter(t)
	uc.On("Get", mock.Anything, testScope).Return(reply.Draft{}, reply.ErrNoDraft)

	w := serve(r, http.MethodGet, "/composer", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmit(t *testing.T) {
	t.Run("sent", func(t *testing.T) {
		r, uc := newTestRouter(t)
		uc.On("Submit", mock.Anything, testScope).Return(reply.SubmitOutput{
			Sent:  1,
			Toast: model.Toast{ID: "abc1234", Title: "Reply Sent", Variant: model.ToastDefault},
		}, nil)

		w := serve(r, http.MethodPost, "/composer/submit", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"title":"Reply Sent"`)
	})

	t.Run("dispatch failed", func(t *testing.T) {
		r, uc := newTestRouter(t)
		uc.On("Submit", mock.Anything, testScope).Return(reply.SubmitOutput{}, reply.ErrDispatchFailed)

		w := serve(r, http.MethodPost, "/composer/submit", "")
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestListThread(t *testing.T) {
	r, uc := newTestRouter(t)
	uc.On("ListThread", mock.Anything, testScope, "c-1").Return([]model.Reply{}, nil)

	w := serve(r, http.MethodGet, "/comments/c-1/replies", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"replies":[]`)
}

func TestCancel(t *testing.T) {
	r, uc := newTestRouter(t)
	uc.On("Cancel", mock.Anything, testScope).Return(nil)

	w := serve(r, http.MethodDelete, "/composer", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
