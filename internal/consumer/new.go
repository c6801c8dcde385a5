package consumer

import (
	"errors"
	"fmt"
)

// New wires a consumer server. Gemini, RabbitMQ and Discord may be nil.
func New(cfg Config) (*ConsumerServer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &ConsumerServer{
		l:        cfg.Logger,
		config:   cfg.Config,
		redis:    cfg.RedisClient,
		db:       cfg.PostgresDB,
		storage:  cfg.MinIOClient,
		producer: cfg.KafkaProducer,
		rabbit:   cfg.RabbitConn,
		enc:      cfg.Encrypter,
		gemini:   cfg.GeminiClient,
		discord:  cfg.Discord,
	}, nil
}

// validate reports every missing dependency at once.
func (cfg Config) validate() error {
	var errs []error
	missing := func(ok bool, name string) {
		if !ok {
			errs = append(errs, fmt.Errorf("%s is required", name))
		}
	}

	missing(cfg.Logger != nil, "logger")
	missing(cfg.Config != nil, "config")
	if cfg.Config != nil {
		missing(len(cfg.Config.Kafka.Brokers) > 0, "kafka brokers")
	}
	missing(cfg.RedisClient != nil, "redis client")
	missing(cfg.PostgresDB != nil, "postgres db")
	missing(cfg.MinIOClient != nil, "minio client")
	missing(cfg.KafkaProducer != nil, "kafka producer")
	missing(cfg.Encrypter != nil, "encrypter")

	return errors.Join(errs...)
}
