package httpserver

import (
	"context"
	"errors"
	"sync"
	"time"

	"comment-srv/pkg/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const (
	ServiceName    = "comment-srv"
	ServiceVersion = "1.0.0"

	readyTimeout = 2 * time.Second
)

var errRabbitNotReady = errors.New("rabbitmq: connection not ready")

type dependencyCheck func(ctx context.Context) error

// dependencyChecks lists what the dashboard needs to serve traffic. Optional
// dependencies only appear when configured.
func (srv *HTTPServer) dependencyChecks() map[string]dependencyCheck {
	checks := map[string]dependencyCheck{
		"postgres": func(ctx context.Context) error { return srv.postgresDB.PingContext(ctx) },
		"redis":    func(ctx context.Context) error { return srv.redisClient.Ping(ctx) },
	}
	if srv.kafkaProducer != nil {
		checks["kafka"] = func(context.Context) error { return srv.kafkaProducer.HealthCheck() }
	}
	if srv.minioClient != nil {
		checks["minio"] = srv.minioClient.HealthCheck
	}
	if srv.rabbitConn != nil {
		checks["rabbitmq"] = func(context.Context) error {
			if !srv.rabbitConn.IsReady() {
				return errRabbitNotReady
			}
			return nil
		}
	}
	return checks
}

// checkDependencies runs every check concurrently and returns the failures by name.
func (srv *HTTPServer) checkDependencies(ctx context.Context) map[string]string {
	ctx, cancel := context.WithTimeout(ctx, readyTimeout)
	defer cancel()

	var (
		mu       sync.Mutex
		failures = map[string]string{}
		g        errgroup.Group
	)
	for name, check := range srv.dependencyChecks() {
		g.Go(func() error {
			if err := check(ctx); err != nil {
				mu.Lock()
				failures[name] = err.Error()
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()
	return failures
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":      "healthy",
		"service":     ServiceName,
		"version":     ServiceVersion,
		"environment": srv.environment,
	})
}

// readyCheck reports 503 with the failing dependencies when any check fails.
// @Summary Readiness Check
// @Description Check postgres, redis and the configured brokers
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Failure 503 {object} response.Resp "A dependency is down"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()
	if failures := srv.checkDependencies(ctx); len(failures) > 0 {
		srv.l.Warnf(ctx, "httpserver.readyCheck: not ready: %v", failures)
		response.Unavailable(c, failures)
		return
	}
	response.OK(c, gin.H{
		"status":  "ready",
		"service": ServiceName,
		"version": ServiceVersion,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{"status": "alive"})
}
