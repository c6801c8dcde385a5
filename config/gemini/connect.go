package gemini

import (
	"fmt"
	"sync"

	"comment-srv/config"
	"comment-srv/pkg/gemini"
)

var (
	instance gemini.IGemini
	mu       sync.Mutex
)

// Connect initializes the Gemini client. It returns nil, nil when no API key is
// configured, which keeps reply suggestions on the canned list.
func Connect(cfg config.GeminiConfig) (gemini.IGemini, error) {
	if cfg.APIKey == "" {
		return nil, nil
	}

	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	client, err := gemini.NewGemini(gemini.GeminiConfig{APIKey: cfg.APIKey, Model: cfg.Model})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	instance = client
	return instance, nil
}
