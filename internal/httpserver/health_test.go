package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"comment-srv/pkg/log"
	pkgRedis "comment-srv/pkg/redis"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProbeServer(t *testing.T) (*HTTPServer, sqlmock.Sqlmock, *miniredis.Miniredis) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	srv := &HTTPServer{
		gin:         gin.New(),
		l:           log.NewNop(),
		environment: "test",
		postgresDB:  db,
		redisClient: pkgRedis.Wrap(rdb),
	}
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	return srv, mock, mr
}

func TestReadyCheck(t *testing.T) {
	t.Run("all dependencies up", func(t *testing.T) {
		srv, mock, _ := newProbeServer(t)
		mock.ExpectPing()

		w := httptest.NewRecorder()
		srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ready"`)
	})

	t.Run("redis down", func(t *testing.T) {
		srv, mock, mr := newProbeServer(t)
		mock.ExpectPing()
		mr.Close()

		w := httptest.NewRecorder()
		srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"redis"`)
		assert.NotContains(t, w.Body.String(), `"postgres"`)
	})
}

func TestHealthAndLive(t *testing.T) {
	srv, _, _ := newProbeServer(t)

	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"environment":"test"`)

	w = httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/live", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
