// Package ports defines interfaces for external dependencies.
package ports

import (
	"context"
)

// InferenceClient abstracts a remote model-serving endpoint that accepts a
// multimodal prompt (text plus one image) and returns free-form text.
type InferenceClient interface {
	// Complete sends the request and returns the raw text content of the
	// model's reply. The reply is expected, but not guaranteed, to contain
	// one embedded HTML document.
	Complete(ctx context.Context, req InferenceRequest) (string, error)
}

// InferenceRequest carries one multimodal chat completion request.
type InferenceRequest struct {
	Model     string // Provider-qualified identifier, e.g. "anthropic/claude-sonnet-4.5"
	Prompt    string // Instruction text
	ImageData []byte // Raw reference screenshot bytes
	MediaType string // MIME type of ImageData, e.g. "image/png"
	MaxTokens int    // Output token ceiling (0 = endpoint default)
}
