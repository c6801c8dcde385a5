package http

import (
	"net/http"
	"time"
)

// Config tunes the outbound client. Retries happen on transport errors,
// 429 and 5xx; the wait doubles per attempt starting at BaseBackoff.
type Config struct {
	Timeout     time.Duration
	MaxRetries  int
	BaseBackoff time.Duration
}

// Response is a fully read upstream response.
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports a 2xx status.
func (r Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

type clientImpl struct {
	hc  *http.Client
	cfg Config
}
