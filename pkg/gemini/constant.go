package gemini

import (
	"errors"
	"time"
)

const (
	// BaseURL is the Generative Language API models endpoint.
	BaseURL      = "https://generativelanguage.googleapis.com/v1beta/models"
	DefaultModel = "gemini-1.5-flash"

	defaultTemperature     = 0.7
	defaultMaxOutputTokens = 512

	defaultTimeout     = 30 * time.Second
	defaultMaxRetries  = 2
	defaultBaseBackoff = time.Second
)

var (
	ErrAPIKeyRequired = errors.New("gemini: API key is required")
	ErrUpstream       = errors.New("gemini: upstream error")
	ErrBlocked        = errors.New("gemini: prompt blocked")
	ErrNoContent      = errors.New("gemini: no content generated")
)
