package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"comment-srv/config"
	"comment-srv/internal/comment"
	"comment-srv/internal/notification"
	"comment-srv/internal/onboarding"
	"comment-srv/internal/post"
	"comment-srv/internal/reply"
	"comment-srv/pkg/discord"
	"comment-srv/pkg/encrypter"
	"comment-srv/pkg/gemini"
	pkgKafka "comment-srv/pkg/kafka"
	"comment-srv/pkg/log"
	"comment-srv/pkg/minio"
	"comment-srv/pkg/rabbitmq"
	pkgRedis "comment-srv/pkg/redis"
	"comment-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin             *gin.Engine
	l               log.Logger
	host            string
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Database Configuration
	postgresDB  *sql.DB
	redisClient pkgRedis.IRedis

	// Messaging & Storage Configuration
	kafkaProducer pkgKafka.IProducer
	rabbitConn    rabbitmq.IRabbitMQ // optional
	minioClient   minio.MinIO
	geminiClient  gemini.IGemini // optional

	// Authentication & Security Configuration
	config     *config.Config
	jwtManager scope.Manager
	encrypter  encrypter.Encrypter

	// Monitoring & Notification Configuration
	discord discord.IDiscord

	// Domain use cases shared between setup steps
	notificationUC notification.UseCase
	postUC         post.UseCase
	commentUC      comment.UseCase
	onboardingUC   onboarding.UseCase
	replyUC        reply.UseCase
}

type Config struct {
	// Server Configuration
	Logger          log.Logger
	Host            string
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	// Database Configuration
	PostgresDB  *sql.DB
	RedisClient pkgRedis.IRedis

	// Messaging & Storage Configuration
	KafkaProducer pkgKafka.IProducer
	RabbitConn    rabbitmq.IRabbitMQ
	MinIOClient   minio.MinIO
	GeminiClient  gemini.IGemini

	// Authentication & Security Configuration
	Config     *config.Config
	JWTManager scope.Manager
	Encrypter  encrypter.Encrypter

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:               logger,
		gin:             gin.New(),
		host:            cfg.Host,
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,

		// Database Configuration
		postgresDB:  cfg.PostgresDB,
		redisClient: cfg.RedisClient,

		// Messaging & Storage Configuration
		kafkaProducer: cfg.KafkaProducer,
		rabbitConn:    cfg.RabbitConn,
		minioClient:   cfg.MinIOClient,
		geminiClient:  cfg.GeminiClient,

		// Authentication & Security Configuration
		config:     cfg.Config,
		jwtManager: cfg.JWTManager,
		encrypter:  cfg.Encrypter,

		// Monitoring & Notification Configuration
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Database Configuration
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}

	// Messaging & Storage Configuration
	if srv.kafkaProducer == nil {
		return errors.New("kafkaProducer is required")
	}
	if srv.minioClient == nil {
		return errors.New("minioClient is required")
	}

	// Authentication & Security Configuration
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}
	if srv.encrypter == nil {
		return errors.New("encrypter is required")
	}

	return nil
}
