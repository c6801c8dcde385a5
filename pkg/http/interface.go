package http

import (
	"context"
	"net/http"
)

// Client is a JSON-over-HTTP client for third-party APIs (Gemini, Discord webhooks).
// Implementations are safe for concurrent use.
type Client interface {
	Get(ctx context.Context, url string, headers map[string]string) (Response, error)
	PostJSON(ctx context.Context, url string, body any, headers map[string]string) (Response, error)
}

// NewClient fills zero fields of cfg from DefaultConfig.
func NewClient(cfg Config) Client {
	def := DefaultConfig()
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.BaseBackoff <= 0 {
		cfg.BaseBackoff = def.BaseBackoff
	}
	return &clientImpl{hc: &http.Client{Timeout: cfg.Timeout}, cfg: cfg}
}

// WithHTTPClient swaps the underlying transport, mainly for tests.
func WithHTTPClient(c Client, hc *http.Client) Client {
	impl, ok := c.(*clientImpl)
	if !ok || hc == nil {
		return c
	}
	return &clientImpl{hc: hc, cfg: impl.cfg}
}
