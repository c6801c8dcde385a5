package httpserver

import (
	"context"

	dashboardHTTP "comment-srv/internal/dashboard/delivery/http"
	dashboardRedis "comment-srv/internal/dashboard/repository/redis"
	dashboardUsecase "comment-srv/internal/dashboard/usecase"
	"comment-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (srv *HTTPServer) setupDashboardDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	uc := dashboardUsecase.New(
		dashboardRedis.New(srv.redisClient, srv.l, srv.config.Dashboard.SessionTTL),
		srv.commentUC,
		srv.replyUC,
		srv.l,
	)

	dashboardHTTP.New(srv.l, uc, srv.discord).RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Dashboard domain registered")
	return nil
}
