package consumer

import (
	"context"
	"database/sql"

	"comment-srv/config"
	"comment-srv/pkg/discord"
	"comment-srv/pkg/encrypter"
	"comment-srv/pkg/gemini"
	pkgKafka "comment-srv/pkg/kafka"
	"comment-srv/pkg/log"
	"comment-srv/pkg/minio"
	"comment-srv/pkg/rabbitmq"
	"comment-srv/pkg/redis"
)

// ConsumerServer runs the reply dispatch consumer group.
type ConsumerServer struct {
	l      log.Logger
	config *config.Config

	redis    redis.IRedis
	db       *sql.DB
	storage  minio.MinIO
	producer pkgKafka.IProducer
	rabbit   rabbitmq.IRabbitMQ
	enc      encrypter.Encrypter
	gemini   gemini.IGemini
	discord  discord.IDiscord
}

// Config lists the consumer server's collaborators.
type Config struct {
	Logger log.Logger
	Config *config.Config

	RedisClient   redis.IRedis
	PostgresDB    *sql.DB
	MinIOClient   minio.MinIO
	KafkaProducer pkgKafka.IProducer
	RabbitConn    rabbitmq.IRabbitMQ
	Encrypter     encrypter.Encrypter
	GeminiClient  gemini.IGemini
	Discord       discord.IDiscord
}

// Run blocks until ctx is cancelled. Startup failures are also posted to Discord.
func (srv *ConsumerServer) Run(ctx context.Context) error {
	consumers, err := srv.setupDomains(ctx)
	if err != nil {
		srv.alert(ctx, "consumer setup failed", err)
		return err
	}

	if err := srv.startConsumers(ctx, consumers); err != nil {
		srv.alert(ctx, "consumer start failed", err)
		srv.stopConsumers(ctx, consumers)
		return err
	}
	srv.l.Info(ctx, "consumer.Run: running")

	<-ctx.Done()
	srv.stopConsumers(context.WithoutCancel(ctx), consumers)
	srv.l.Info(ctx, "consumer.Run: stopped")
	return nil
}

func (srv *ConsumerServer) alert(ctx context.Context, title string, err error) {
	srv.l.Errorf(ctx, "consumer.Run: %s: %v", title, err)
	if srv.discord == nil {
		return
	}
	if derr := srv.discord.SendError(ctx, title, "comment consumer", err); derr != nil {
		srv.l.Warnf(ctx, "consumer.alert: discord: %v", derr)
	}
}
