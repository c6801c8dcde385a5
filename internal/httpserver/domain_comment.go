package httpserver

import (
	"context"

	commentHTTP "comment-srv/internal/comment/delivery/http"
	commentPostgre "comment-srv/internal/comment/repository/postgre"
	commentRedis "comment-srv/internal/comment/repository/redis"
	commentUsecase "comment-srv/internal/comment/usecase"
	"comment-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (srv *HTTPServer) setupCommentDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	dash := srv.config.Dashboard

	srv.commentUC = commentUsecase.New(
		commentPostgre.New(srv.postgresDB, srv.l),
		commentRedis.New(srv.redisClient, srv.l, dash.StoreCacheTTL),
		srv.notificationUC,
		srv.postUC,
		srv.l,
		commentUsecase.Config{
			FeedLimit:     dash.FeedLimit,
			PageSize:      dash.PageSize,
			PreviewLength: dash.PreviewLength,
		},
	)

	handler := commentHTTP.New(srv.l, srv.commentUC, srv.discord)
	handler.RegisterRoutes(r, mw)
	handler.RegisterInternalRoutes(r, mw)

	srv.l.Infof(ctx, "Comment domain registered")
	return nil
}
