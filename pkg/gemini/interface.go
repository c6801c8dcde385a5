package gemini

import (
	"context"

	pkghttp "comment-srv/pkg/http"
)

// IGemini generates text from a prompt.
// Implementations are safe for concurrent use.
type IGemini interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// NewGemini fills Model, BaseURL and the generation knobs with defaults when zero.
func NewGemini(cfg GeminiConfig) (IGemini, error) {
	if cfg.APIKey == "" {
		return nil, ErrAPIKeyRequired
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = BaseURL
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = defaultTemperature
	}
	if cfg.MaxOutputTokens <= 0 {
		cfg.MaxOutputTokens = defaultMaxOutputTokens
	}
	return &geminiImpl{
		apiKey:          cfg.APIKey,
		model:           cfg.Model,
		baseURL:         cfg.BaseURL,
		temperature:     cfg.Temperature,
		maxOutputTokens: cfg.MaxOutputTokens,
		httpClient: pkghttp.NewClient(pkghttp.Config{
			Timeout:     defaultTimeout,
			MaxRetries:  defaultMaxRetries,
			BaseBackoff: defaultBaseBackoff,
		}),
	}, nil
}
