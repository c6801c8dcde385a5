package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgErrors "comment-srv/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCtx() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) Resp {
	t.Helper()
	var r Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &r))
	return r
}

func TestOK(t *testing.T) {
	c, w := newCtx()
	OK(c, gin.H{"a": 1})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, MessageSuccess, decode(t, w).Message)
}

func TestError(t *testing.T) {
	t.Run("http error", func(t *testing.T) {
		c, w := newCtx()
		Error(c, pkgErrors.NewHTTPError(404, "Comment not found"), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Comment not found", decode(t, w).Message)
	})

	t.Run("validation error", func(t *testing.T) {
		c, w := newCtx()
		Error(c, pkgErrors.NewValidationError("name", "required"), nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, MessageValidation, decode(t, w).Message)
	})

	t.Run("unknown error", func(t *testing.T) {
		c, w := newCtx()
		Error(c, errors.New("db down"), nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestUnavailable(t *testing.T) {
	c, w := newCtx()
	Unavailable(c, map[string]string{"redis": "dial tcp: refused"})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	r := decode(t, w)
	assert.Equal(t, CodeUnavailable, r.ErrorCode)
	assert.Equal(t, map[string]any{"redis": "dial tcp: refused"}, r.Errors)
}
