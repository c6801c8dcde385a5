package rabbitmq

import (
	"fmt"
	"sync"

	"comment-srv/config"
	"comment-srv/pkg/log"
	"comment-srv/pkg/rabbitmq"
)

var (
	instance rabbitmq.IRabbitMQ
	mu       sync.Mutex
)

// Connect dials the toast event broker. It returns nil, nil when no URL is
// configured, in which case toasts are only kept in Redis.
func Connect(l log.Logger, cfg config.RabbitMQConfig) (rabbitmq.IRabbitMQ, error) {
	if cfg.URL == "" {
		return nil, nil
	}

	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	conn, err := rabbitmq.NewRabbitMQ(l, cfg.URL, false)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	instance = conn
	return instance, nil
}

// Disconnect closes the connection and resets the singleton.
func Disconnect() {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		instance.Close()
		instance = nil
	}
}
