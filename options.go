package lingora

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"

	"github.com/lingora/client-go/internal/api"
)

const (
	defaultSourceLang = "auto"
	defaultPage       = 1
	defaultPageSize   = 10

	defaultJobPollInterval    = 2 * time.Second
	defaultJobPollMaxInterval = 30 * time.Second
	defaultJobPollMultiplier  = 1.5
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL       string
	timeout       time.Duration
	maxRetries    int
	maxConcurrent int
	httpClient    *http.Client
	userAgent     string
	logger        *zerolog.Logger
	breaker       *gobreaker.CircuitBreaker
}

// translateConfig holds per-call options shared by the translate operations.
type translateConfig struct {
	source string
}

// listConfig holds pagination options for ListI18nJobs.
type listConfig struct {
	page     int
	pageSize int
}

// jobWaitConfig holds polling options for WaitForI18nJob.
type jobWaitConfig struct {
	interval    time.Duration
	maxInterval time.Duration
	multiplier  float64
}

// Option configures the client.
type Option func(*clientConfig)

// TranslateOption configures a translate operation.
type TranslateOption func(*translateConfig)

// ListOption configures job listing.
type ListOption func(*listConfig)

// JobWaitOption configures job status polling.
type JobWaitOption func(*jobWaitConfig)

// WithBaseURL sets the API base URL. A trailing slash is stripped.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithTimeout sets the per-attempt HTTP timeout.
// Default: 30 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithMaxRetries sets how many times connection-level failures are retried
// after the initial attempt. Must be >= 0.
// Default: 3.
func WithMaxRetries(count int) Option {
	return func(c *clientConfig) {
		c.maxRetries = count
	}
}

// WithMaxConcurrent bounds the number of simultaneously in-flight requests
// across all callers of this client. Must be >= 1.
// Default: 5.
func WithMaxConcurrent(count int) Option {
	return func(c *clientConfig) {
		c.maxConcurrent = count
	}
}

// WithHTTPClient sets a custom HTTP client. The configured timeout is not
// applied to a custom client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithUserAgent overrides the User-Agent header value.
func WithUserAgent(ua string) Option {
	return func(c *clientConfig) {
		c.userAgent = ua
	}
}

// WithLogger sets a logger for request pipeline debug events. The client
// is silent by default.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = &logger
	}
}

// WithCircuitBreaker guards every HTTP attempt with the given breaker.
// Requests rejected by an open breaker fail without consuming retries.
func WithCircuitBreaker(breaker *gobreaker.CircuitBreaker) Option {
	return func(c *clientConfig) {
		c.breaker = breaker
	}
}

// WithSourceLang sets the source language for a translate operation.
// Default: "auto".
func WithSourceLang(lang string) TranslateOption {
	return func(c *translateConfig) {
		c.source = lang
	}
}

// WithPage sets the page number for job listing. Pages start at 1.
func WithPage(page int) ListOption {
	return func(c *listConfig) {
		c.page = page
	}
}

// WithPageSize sets the page size for job listing.
// Default: 10.
func WithPageSize(size int) ListOption {
	return func(c *listConfig) {
		c.pageSize = size
	}
}

// WithPollInterval sets the initial interval between job status polls.
// Default: 2 seconds.
func WithPollInterval(interval time.Duration) JobWaitOption {
	return func(c *jobWaitConfig) {
		c.interval = interval
	}
}

// WithPollMaxInterval caps the interval between job status polls as the
// backoff grows.
// Default: 30 seconds.
func WithPollMaxInterval(max time.Duration) JobWaitOption {
	return func(c *jobWaitConfig) {
		c.maxInterval = max
	}
}

// WithPollMultiplier sets the factor applied to the poll interval after
// each non-terminal status.
// Default: 1.5.
func WithPollMultiplier(multiplier float64) JobWaitOption {
	return func(c *jobWaitConfig) {
		c.multiplier = multiplier
	}
}

func newTranslateConfig(opts []TranslateOption) *translateConfig {
	cfg := &translateConfig{source: defaultSourceLang}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func (c *clientConfig) apiConfig(apiKey string) api.Config {
	return api.Config{
		APIKey:        apiKey,
		BaseURL:       c.baseURL,
		Timeout:       c.timeout,
		MaxRetries:    c.maxRetries,
		MaxConcurrent: c.maxConcurrent,
		HTTPClient:    c.httpClient,
		UserAgent:     c.userAgent,
		Logger:        c.logger,
		Breaker:       c.breaker,
	}
}
