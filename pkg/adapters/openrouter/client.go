// Package openrouter provides an InferenceClient implementation for the
// OpenRouter chat completions API.
package openrouter

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/user/uibench/pkg/ports"
)

// DefaultEndpoint is the OpenRouter chat completions URL.
const DefaultEndpoint = "https://openrouter.ai/api/v1/chat/completions"

// Options configures a Client.
type Options struct {
	Endpoint   string
	APIKey     string
	Referer    string        // Sent as HTTP-Referer
	Title      string        // Sent as X-Title
	Timeout    time.Duration // Per-request budget (default 300s)
	MaxRetries int           // Attempts for rate limits and timeouts (default 3)
}

// Client implements ports.InferenceClient against OpenRouter.
type Client struct {
	endpoint   string
	apiKey     string
	referer    string
	title      string
	maxRetries int

	httpClient *http.Client

	// Backoff bases. Tests shorten these.
	rateLimitWait time.Duration
	timeoutWait   time.Duration
}

// New creates a new Client.
func New(opts Options) *Client {
	if opts.Endpoint == "" {
		opts.Endpoint = DefaultEndpoint
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 300 * time.Second
	}
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = 3
	}

	return &Client{
		endpoint:      opts.Endpoint,
		apiKey:        opts.APIKey,
		referer:       opts.Referer,
		title:         opts.Title,
		maxRetries:    opts.MaxRetries,
		httpClient:    &http.Client{Timeout: opts.Timeout},
		rateLimitWait: 10 * time.Second,
		timeoutWait:   5 * time.Second,
	}
}

// Ensure Client implements ports.InferenceClient
var _ ports.InferenceClient = (*Client)(nil)

// StatusError is returned for non-success, non-rate-limit HTTP responses.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("openrouter: unexpected status %d: %s", e.StatusCode, e.Body)
}

// APIError is returned when the endpoint reports an error in the response
// body despite a success status.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("openrouter: API error %d: %s", e.Code, e.Message)
}

// ErrNoChoices is returned when a success response carries no completion.
var ErrNoChoices = errors.New("openrouter: response contains no choices")

// request/response wire types.
type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatResponse struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends the multimodal prompt and returns the raw reply text.
// Rate limits (HTTP 429) and request timeouts are retried with exponential
// backoff; other endpoint failures are surfaced immediately.
func (c *Client) Complete(ctx context.Context, req ports.InferenceRequest) (string, error) {
	dataURL := fmt.Sprintf("data:%s;base64,%s",
		req.MediaType, base64.StdEncoding.EncodeToString(req.ImageData))

	payload := chatRequest{
		Model: req.Model,
		Messages: []chatMessage{
			{
				Role: "user",
				Content: []contentPart{
					{Type: "text", Text: req.Prompt},
					{Type: "image_url", ImageURL: &imageURL{URL: dataURL}},
				},
			},
		},
		MaxTokens: req.MaxTokens,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		content, retryWait, err := c.attempt(ctx, body)
		if err == nil {
			return content, nil
		}
		if retryWait <= 0 {
			return "", err
		}

		lastErr = err
		if attempt == c.maxRetries-1 {
			break
		}
		if err := sleep(ctx, retryWait<<attempt); err != nil {
			return "", err
		}
	}

	return "", fmt.Errorf("openrouter: giving up after %d attempts: %w", c.maxRetries, lastErr)
}

// attempt performs one HTTP round trip. A positive retryWait marks the
// error as transient.
func (c *Client) attempt(ctx context.Context, body []byte) (content string, retryWait time.Duration, err error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", 0, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	if c.referer != "" {
		httpReq.Header.Set("HTTP-Referer", c.referer)
	}
	if c.title != "" {
		httpReq.Header.Set("X-Title", c.title)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return "", 0, ctx.Err()
		}
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Timeout() {
			return "", c.timeoutWait, fmt.Errorf("request timed out: %w", err)
		}
		return "", 0, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		io.Copy(io.Discard, resp.Body)
		return "", c.rateLimitWait, errors.New("rate limited (HTTP 429)")
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", 0, &StatusError{StatusCode: resp.StatusCode, Body: truncate(string(respBody), 512)}
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", 0, fmt.Errorf("decode response: %w", err)
	}

	if parsed.Error != nil {
		return "", 0, &APIError{Code: parsed.Error.Code, Message: parsed.Error.Message}
	}
	if len(parsed.Choices) == 0 {
		return "", 0, ErrNoChoices
	}

	return parsed.Choices[0].Message.Content, 0, nil
}

// sleep waits for d or until the context is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
