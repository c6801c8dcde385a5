package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"comment-srv/config"
	configGemini "comment-srv/config/gemini"
	configKafka "comment-srv/config/kafka"
	configMinIO "comment-srv/config/minio"
	configPostgre "comment-srv/config/postgre"
	configRabbit "comment-srv/config/rabbitmq"
	configRedis "comment-srv/config/redis"
	_ "comment-srv/docs" // Import swagger docs
	"comment-srv/internal/httpserver"
	"comment-srv/pkg/discord"
	"comment-srv/pkg/encrypter"
	pkgJWT "comment-srv/pkg/jwt"
	"comment-srv/pkg/log"

	"github.com/joho/godotenv"
)

// @title       SMAP Comment Service API
// @description Comment management dashboard: feed, filters, bulk actions and reply composer.
// @version     1
// @host        comment-srv.tantai.dev
// @schemes     https
// @BasePath    /comment
//
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name smap_auth_token
// @description Authentication token stored in HttpOnly cookie.
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Bearer token authentication. Format: "Bearer {token}"
func main() {
	// .env is optional; real deployments inject the environment directly.
	_ = godotenv.Load()

	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// 3. Cancel on SIGINT/SIGTERM; deferred disconnects run once Run returns
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Initialize encrypter
	encrypterInstance := encrypter.New(cfg.Encrypter.Key)

	// 5. Initialize PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 6. Initialize Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 7. Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 8. Initialize Kafka producer (reply dispatch)
	kafkaProducer, err := configKafka.ConnectProducer(cfg.Kafka)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Kafka producer: ", err)
		return
	}
	defer configKafka.DisconnectProducer()
	logger.Infof(ctx, "Kafka producer connected to %v", cfg.Kafka.Brokers)

	// 9. Initialize RabbitMQ (optional, toast fan-out)
	rabbitConn, err := configRabbit.Connect(logger, cfg.RabbitMQ)
	if err != nil {
		logger.Error(ctx, "Failed to connect to RabbitMQ: ", err)
		return
	}
	if rabbitConn != nil {
		defer configRabbit.Disconnect()
		logger.Infof(ctx, "RabbitMQ connected")
	}

	// 10. Initialize MinIO (avatars)
	minioClient, err := configMinIO.Connect(ctx, cfg.MinIO)
	if err != nil {
		logger.Error(ctx, "Failed to connect to MinIO: ", err)
		return
	}
	defer configMinIO.Disconnect()
	logger.Infof(ctx, "MinIO connected, bucket %s", cfg.MinIO.Bucket)

	// 11. Initialize Gemini (optional, reply suggestions)
	geminiClient, err := configGemini.Connect(cfg.Gemini)
	if err != nil {
		logger.Error(ctx, "Failed to initialize Gemini client: ", err)
		return
	}
	if geminiClient == nil {
		logger.Warnf(ctx, "Gemini API key not configured, suggestions fall back to canned replies")
	}

	// 12. Initialize JWT Manager
	jwtManager, err := initializeJWTManager(cfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}
	logger.Infof(ctx, "JWT Manager initialized with algorithm: %s", cfg.JWT.Algorithm)

	// 13. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:          logger,
		Host:            cfg.HTTPServer.Host,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,

		// Database Configuration
		PostgresDB:  postgresDB,
		RedisClient: redisClient,

		// Messaging & Storage Configuration
		KafkaProducer: kafkaProducer,
		RabbitConn:    rabbitConn,
		MinIOClient:   minioClient,
		GeminiClient:  geminiClient,

		// Authentication & Security Configuration
		Config:     cfg,
		JWTManager: jwtManager,
		Encrypter:  encrypterInstance,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}

func initializeJWTManager(cfg *config.Config) (pkgJWT.IManager, error) {
	return pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		Audience:  cfg.JWT.Audience,
		TTL:       time.Duration(cfg.JWT.TTL) * time.Second,
	})
}
