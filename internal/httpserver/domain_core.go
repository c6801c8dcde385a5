package httpserver

import (
	"context"
	"fmt"

	"comment-srv/internal/middleware"
	"comment-srv/internal/notification"
	notificationHTTP "comment-srv/internal/notification/delivery/http"
	notificationRabbit "comment-srv/internal/notification/delivery/rabbitmq/producer"
	notificationRedis "comment-srv/internal/notification/repository/redis"
	notificationUsecase "comment-srv/internal/notification/usecase"
	postHTTP "comment-srv/internal/post/delivery/http"
	postPostgre "comment-srv/internal/post/repository/postgre"
	postRedis "comment-srv/internal/post/repository/redis"
	postUsecase "comment-srv/internal/post/usecase"

	"github.com/gin-gonic/gin"
)

// setupCoreDomains wires the domains with no domain collaborators: notification and post.
func (srv *HTTPServer) setupCoreDomains(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	var publisher notification.Publisher
	if srv.rabbitConn != nil {
		p, err := notificationRabbit.New(srv.l, srv.rabbitConn)
		if err != nil {
			return fmt.Errorf("setupCoreDomains: toast publisher: %w", err)
		}
		publisher = p
	}
	srv.notificationUC = notificationUsecase.New(
		notificationRedis.New(srv.redisClient, srv.l),
		publisher,
		srv.l,
		srv.config.Dashboard.ToastTTL,
	)
	notificationHTTP.New(srv.l, srv.notificationUC, srv.discord).RegisterRoutes(r, mw)

	srv.postUC = postUsecase.New(
		postPostgre.New(srv.postgresDB, srv.l),
		postRedis.New(srv.redisClient, srv.l, srv.config.Dashboard.StoreCacheTTL),
		srv.l,
	)
	postHTTP.New(srv.l, srv.postUC, srv.discord).RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Core domains (Notification, Post) registered")
	return nil
}
