package lingora

import (
	"context"
	"fmt"

	"github.com/lingora/client-go/internal/api"
)

// Result is a parsed JSON response object. The facade does not reshape
// server payloads; fields arrive exactly as the API returned them.
type Result = api.Result

// Client is the Lingora API client. It is safe for concurrent use; all
// operations share one admission gate bounding in-flight requests.
type Client struct {
	apiClient     *api.Client
	maxConcurrent int
}

// New creates a new Lingora client with the given API key.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &clientConfig{
		baseURL:       api.DefaultBaseURL,
		timeout:       api.DefaultTimeout,
		maxRetries:    api.DefaultMaxRetries,
		maxConcurrent: api.DefaultMaxConcurrent,
		userAgent:     fmt.Sprintf("%s/%s", api.DefaultUserAgent, Version),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.maxRetries < 0 {
		return nil, validationError(fmt.Sprintf("max retries must be >= 0, got %d", cfg.maxRetries))
	}
	if cfg.maxConcurrent < 1 {
		return nil, validationError(fmt.Sprintf("max concurrent must be >= 1, got %d", cfg.maxConcurrent))
	}

	apiClient, err := api.NewClient(cfg.apiConfig(apiKey))
	if err != nil {
		return nil, err
	}

	return &Client{
		apiClient:     apiClient,
		maxConcurrent: cfg.maxConcurrent,
	}, nil
}

// InFlight returns the number of requests currently executing. It never
// exceeds the configured concurrency limit.
func (c *Client) InFlight() int64 {
	return c.apiClient.InFlight()
}

// DetectLanguage identifies the language of the given text.
func (c *Client) DetectLanguage(ctx context.Context, text string) (Result, error) {
	if text == "" {
		return nil, validationError("text must not be empty")
	}
	res, err := c.apiClient.DetectLanguage(ctx, text)
	return res, wrapError(err)
}

// SupportedLanguages lists the language pairs the service supports.
func (c *Client) SupportedLanguages(ctx context.Context) (Result, error) {
	res, err := c.apiClient.SupportedLanguages(ctx)
	return res, wrapError(err)
}

// AccountSummary returns usage and remaining credit information for the
// account behind the API key.
func (c *Client) AccountSummary(ctx context.Context) (Result, error) {
	res, err := c.apiClient.AccountSummary(ctx)
	return res, wrapError(err)
}
