package httpserver

import (
	"context"

	_ "comment-srv/docs" // swagger spec
	"comment-srv/internal/middleware"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv *HTTPServer) mapHandlers() error {
	ctx := context.Background()
	mw := middleware.New(srv.l, srv.jwtManager, srv.config.Cookie, srv.config.InternalConfig, srv.encrypter)

	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	root := srv.gin.Group("")

	// Leaf domains first: later ones take their use cases as collaborators.
	if err := srv.setupCoreDomains(ctx, root, mw); err != nil {
		return err
	}
	if err := srv.setupCommentDomain(ctx, root, mw); err != nil {
		return err
	}
	if err := srv.setupOnboardingDomain(ctx, root, mw); err != nil {
		return err
	}
	if err := srv.setupReplyDomain(ctx, root, mw); err != nil {
		return err
	}
	if err := srv.setupDashboardDomain(ctx, root, mw); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(middleware.Trace())
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))
	srv.gin.Use(middleware.CORS(srv.config.CORS.AllowedOrigins))

	if len(srv.config.CORS.AllowedOrigins) == 0 {
		srv.l.Warnf(context.Background(), "CORS: no allowed origins configured, every origin is accepted")
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"), // Use relative path
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
