package httpserver

import (
	"context"

	dashboardRedis "comment-srv/internal/dashboard/repository/redis"
	dashboardUsecase "comment-srv/internal/dashboard/usecase"
	"comment-srv/internal/middleware"
	replyHTTP "comment-srv/internal/reply/delivery/http"
	replyProducer "comment-srv/internal/reply/delivery/kafka/producer"
	replyPostgre "comment-srv/internal/reply/repository/postgre"
	replyRedis "comment-srv/internal/reply/repository/redis"
	replyUsecase "comment-srv/internal/reply/usecase"

	"github.com/gin-gonic/gin"
)

func (srv *HTTPServer) setupReplyDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	srv.replyUC = replyUsecase.New(
		replyRedis.New(srv.redisClient, srv.l, srv.config.Dashboard.SessionTTL),
		replyPostgre.New(srv.postgresDB, srv.l),
		replyProducer.New(srv.l, srv.kafkaProducer),
		srv.commentUC,
		srv.notificationUC,
		srv.onboardingUC,
		dashboardUsecase.NewSelectionReader(dashboardRedis.New(srv.redisClient, srv.l, srv.config.Dashboard.SessionTTL)),
		srv.geminiClient,
		srv.l,
		replyUsecase.Config{SubmitLockTTL: srv.config.Dashboard.SubmitLockTTL},
	)

	replyHTTP.New(srv.l, srv.replyUC, srv.discord).RegisterRoutes(r, mw)

	if srv.geminiClient == nil {
		srv.l.Infof(ctx, "Reply domain registered (canned suggestions only)")
		return nil
	}
	srv.l.Infof(ctx, "Reply domain registered")
	return nil
}
