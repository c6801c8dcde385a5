package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Generate sends a single-turn prompt and joins the text parts of the first candidate.
func (g *geminiImpl) Generate(ctx context.Context, prompt string) (string, error) {
	url := fmt.Sprintf("%s/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	req := Request{
		Contents: []Content{{Role: "user", Parts: []Part{{Text: prompt}}}},
		GenerationConfig: &GenerationConfig{
			Temperature:     g.temperature,
			MaxOutputTokens: g.maxOutputTokens,
		},
	}

	raw, err := g.httpClient.PostJSON(ctx, url, req, nil)
	if err != nil {
		return "", fmt.Errorf("gemini: call failed: %w", err)
	}
	if raw.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d: %s", ErrUpstream, raw.StatusCode, truncate(raw.Body, 512))
	}

	var resp Response
	if err := json.Unmarshal(raw.Body, &resp); err != nil {
		return "", fmt.Errorf("gemini: decode response: %w", err)
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: %s", ErrBlocked, resp.PromptFeedback.BlockReason)
	}
	if len(resp.Candidates) == 0 {
		return "", ErrNoContent
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	if strings.TrimSpace(b.String()) == "" {
		return "", ErrNoContent
	}
	return b.String(), nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
