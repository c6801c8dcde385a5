package discord

import (
	"errors"
	"time"
)

const (
	webhookBaseURL = "https://discord.com/api/webhooks"

	defaultTimeout    = 10 * time.Second
	defaultRetryCount = 2
	defaultRetryDelay = 500 * time.Millisecond
	defaultUsername   = "comment-srv"

	maxDescriptionLen = 4000
	maxFieldValueLen  = 1000

	colorInfo    = 0x3498DB
	colorWarning = 0xF1C40F
	colorError   = 0xE74C3C
)

var (
	errWebhookRequired = errors.New("discord: webhook id and token are required")
	errUnexpectedCode  = errors.New("discord: unexpected status code")
)

// DefaultConfig returns the Config used by New.
func DefaultConfig() Config {
	return Config{
		BaseURL:    webhookBaseURL,
		Timeout:    defaultTimeout,
		RetryCount: defaultRetryCount,
		RetryDelay: defaultRetryDelay,
		Username:   defaultUsername,
	}
}
