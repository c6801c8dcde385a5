package consumer

import (
	"context"
	"fmt"

	commentPostgre "comment-srv/internal/comment/repository/postgre"
	commentRedis "comment-srv/internal/comment/repository/redis"
	commentUsecase "comment-srv/internal/comment/usecase"
	dashboardRedis "comment-srv/internal/dashboard/repository/redis"
	dashboardUsecase "comment-srv/internal/dashboard/usecase"
	"comment-srv/internal/notification"
	notificationRabbit "comment-srv/internal/notification/delivery/rabbitmq/producer"
	notificationRedis "comment-srv/internal/notification/repository/redis"
	notificationUsecase "comment-srv/internal/notification/usecase"
	onboardingPostgre "comment-srv/internal/onboarding/repository/postgre"
	onboardingUsecase "comment-srv/internal/onboarding/usecase"
	postPostgre "comment-srv/internal/post/repository/postgre"
	postRedis "comment-srv/internal/post/repository/redis"
	postUsecase "comment-srv/internal/post/usecase"
	replyConsumer "comment-srv/internal/reply/delivery/kafka/consumer"
	replyProducer "comment-srv/internal/reply/delivery/kafka/producer"
	replyPostgre "comment-srv/internal/reply/repository/postgre"
	replyRedis "comment-srv/internal/reply/repository/redis"
	replyUsecase "comment-srv/internal/reply/usecase"
)

// domainConsumers holds references to all domain consumers for cleanup
type domainConsumers struct {
	replyConsumer replyConsumer.Consumer
}

// setupDomains builds the reply use case and its collaborators, then the dispatch consumer.
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	dash := srv.config.Dashboard

	var publisher notification.Publisher
	if srv.rabbit != nil {
		p, err := notificationRabbit.New(srv.l, srv.rabbit)
		if err != nil {
			return nil, fmt.Errorf("failed to create toast publisher: %w", err)
		}
		publisher = p
	}
	notificationUC := notificationUsecase.New(
		notificationRedis.New(srv.redis, srv.l),
		publisher,
		srv.l,
		dash.ToastTTL,
	)

	postUC := postUsecase.New(
		postPostgre.New(srv.db, srv.l),
		postRedis.New(srv.redis, srv.l, dash.StoreCacheTTL),
		srv.l,
	)

	commentUC := commentUsecase.New(
		commentPostgre.New(srv.db, srv.l),
		commentRedis.New(srv.redis, srv.l, dash.StoreCacheTTL),
		notificationUC,
		postUC,
		srv.l,
		commentUsecase.Config{
			FeedLimit:     dash.FeedLimit,
			PageSize:      dash.PageSize,
			PreviewLength: dash.PreviewLength,
		},
	)

	onboardingUC := onboardingUsecase.New(
		onboardingPostgre.New(srv.db, srv.l),
		srv.storage,
		srv.enc,
		srv.l,
		onboardingUsecase.Config{AvatarBucket: srv.config.MinIO.Bucket},
	)

	replyUC := replyUsecase.New(
		replyRedis.New(srv.redis, srv.l, dash.SessionTTL),
		replyPostgre.New(srv.db, srv.l),
		replyProducer.New(srv.l, srv.producer),
		commentUC,
		notificationUC,
		onboardingUC,
		dashboardUsecase.NewSelectionReader(dashboardRedis.New(srv.redis, srv.l, dash.SessionTTL)),
		srv.gemini,
		srv.l,
		replyUsecase.Config{SubmitLockTTL: dash.SubmitLockTTL},
	)

	replyCons, err := replyConsumer.New(replyConsumer.Config{
		Logger:      srv.l,
		KafkaConfig: srv.config.Kafka,
		UseCase:     replyUC,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create reply consumer: %w", err)
	}

	srv.l.Infof(ctx, "Reply domain initialized")

	return &domainConsumers{
		replyConsumer: replyCons,
	}, nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	if err := consumers.replyConsumer.ConsumeReplyDispatch(ctx); err != nil {
		return fmt.Errorf("failed to start reply consumer: %w", err)
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	if consumers.replyConsumer != nil {
		if err := consumers.replyConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing reply consumer: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
