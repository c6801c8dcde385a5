package httpserver

import (
	"context"

	"comment-srv/internal/middleware"
	onboardingHTTP "comment-srv/internal/onboarding/delivery/http"
	onboardingPostgre "comment-srv/internal/onboarding/repository/postgre"
	onboardingUsecase "comment-srv/internal/onboarding/usecase"

	"github.com/gin-gonic/gin"
)

func (srv *HTTPServer) setupOnboardingDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	srv.onboardingUC = onboardingUsecase.New(
		onboardingPostgre.New(srv.postgresDB, srv.l),
		srv.minioClient,
		srv.encrypter,
		srv.l,
		onboardingUsecase.Config{AvatarBucket: srv.config.MinIO.Bucket},
	)

	onboardingHTTP.New(srv.l, srv.onboardingUC, srv.discord).RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Onboarding domain registered")
	return nil
}
