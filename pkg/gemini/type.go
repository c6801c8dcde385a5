package gemini

import pkghttp "comment-srv/pkg/http"

// GeminiConfig holds the configuration for the Gemini client.
// BaseURL is overridden in tests.
type GeminiConfig struct {
	APIKey          string
	Model           string
	BaseURL         string
	Temperature     float64
	MaxOutputTokens int
}

type geminiImpl struct {
	apiKey          string
	model           string
	baseURL         string
	temperature     float64
	maxOutputTokens int
	httpClient      pkghttp.Client
}

// Request is the generateContent request body.
type Request struct {
	Contents         []Content         `json:"contents"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

type GenerationConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

type Part struct {
	Text string `json:"text,omitempty"`
}

// Response is the subset of the generateContent response the service reads.
type Response struct {
	Candidates     []Candidate     `json:"candidates"`
	PromptFeedback *PromptFeedback `json:"promptFeedback,omitempty"`
}

type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason"`
}

// PromptFeedback is set when the prompt itself was rejected.
type PromptFeedback struct {
	BlockReason string `json:"blockReason"`
}
