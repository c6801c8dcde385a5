package rabbitmq

import (
	"errors"
	"time"
)

const (
	RetryConnectionDelay   = 2 * time.Second
	RetryConnectionTimeout = 20 * time.Second

	ContentTypeJSON    = "application/json"
	ExchangeTypeFanout = "fanout"
)

var ErrConnectionTimeout = errors.New("rabbitmq: connection timeout")
