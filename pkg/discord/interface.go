package discord

import (
	"context"

	pkghttp "comment-srv/pkg/http"
	"comment-srv/pkg/log"
)

// IDiscord posts operational alerts to a Discord webhook.
// Implementations are safe for concurrent use.
type IDiscord interface {
	SendEmbed(ctx context.Context, options MessageOptions) error
	// SendError reports a failed request; err is rendered as a field.
	SendError(ctx context.Context, title, description string, err error) error
}

// DiscordWebhook identifies the webhook to post to.
type DiscordWebhook struct {
	ID    string
	Token string
}

// New fails with errWebhookRequired when the webhook is incomplete; callers treat that as "disabled".
func New(l log.Logger, webhook *DiscordWebhook) (IDiscord, error) {
	return newWithConfig(l, webhook, DefaultConfig())
}

func newWithConfig(l log.Logger, webhook *DiscordWebhook, cfg Config) (IDiscord, error) {
	if webhook == nil || webhook.ID == "" || webhook.Token == "" {
		return nil, errWebhookRequired
	}
	return &discordImpl{
		l:       l,
		webhook: webhook,
		config:  cfg,
		client: pkghttp.NewClient(pkghttp.Config{
			Timeout:     cfg.Timeout,
			MaxRetries:  cfg.RetryCount,
			BaseBackoff: cfg.RetryDelay,
		}),
	}, nil
}
