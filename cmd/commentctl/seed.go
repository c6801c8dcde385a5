package main

import (
	"context"
	"errors"
	"fmt"

	"comment-srv/config"
	configPostgre "comment-srv/config/postgre"
	configRedis "comment-srv/config/redis"
	"comment-srv/internal/comment"
	commentPostgre "comment-srv/internal/comment/repository/postgre"
	commentRedis "comment-srv/internal/comment/repository/redis"
	commentUsecase "comment-srv/internal/comment/usecase"
	"comment-srv/internal/model"
	"comment-srv/internal/notification"
	postPostgre "comment-srv/internal/post/repository/postgre"
	postRedis "comment-srv/internal/post/repository/redis"
	postUsecase "comment-srv/internal/post/usecase"
	"comment-srv/pkg/log"

	"github.com/spf13/cobra"
)

var seedUserID string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load fixture posts and comments into a user's store",
	RunE: func(cmd *cobra.Command, args []string) error {
		if seedUserID == "" {
			return errors.New("--user is required")
		}
		fx, err := loadFixtures(fixturesFile)
		if err != nil {
			return err
		}
		return runSeed(cmd.Context(), fx)
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedUserID, "user", "", "Owner account id")
}

func runSeed(ctx context.Context, fx fixtures) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	l := log.Init(log.ZapConfig{
		Level:    cfg.Logger.Level,
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
	})

	db, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer configPostgre.Disconnect(db)

	rdb, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer configRedis.Disconnect()

	dash := cfg.Dashboard
	// Toasts raised while seeding are only echoed to the operator.
	toasts := notification.NewQueue(dash.ToastTTL)
	defer toasts.Close()
	postUC := postUsecase.New(postPostgre.New(db, l), postRedis.New(rdb, l, dash.StoreCacheTTL), l)
	commentUC := commentUsecase.New(
		commentPostgre.New(db, l),
		commentRedis.New(rdb, l, dash.StoreCacheTTL),
		toasts,
		postUC,
		l,
		commentUsecase.DefaultConfig(),
	)

	sc := model.Scope{UserID: seedUserID}
	out, err := commentUC.Ingest(ctx, sc, comment.IngestInput{
		Comments: fx.Comments,
		Posts:    fx.Posts,
	})
	if err != nil {
		return fmt.Errorf("ingest: %w", err)
	}
	l.Infof(ctx, "Seeded %d comments and %d posts for user %s", out.Comments, out.Posts, seedUserID)

	pending, _ := toasts.List(ctx, sc)
	for _, t := range pending {
		l.Infof(ctx, "%s: %s", t.Title, t.Description)
	}
	return nil
}
