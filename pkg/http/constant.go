package http

import "time"

const (
	DefaultTimeout     = 30 * time.Second
	DefaultMaxRetries  = 3
	DefaultBaseBackoff = 500 * time.Millisecond
	// MaxBackoff caps a single wait between attempts.
	MaxBackoff = 8 * time.Second
)

// DefaultConfig returns the Config used when fields are left zero.
func DefaultConfig() Config {
	return Config{
		Timeout:     DefaultTimeout,
		MaxRetries:  DefaultMaxRetries,
		BaseBackoff: DefaultBaseBackoff,
	}
}
