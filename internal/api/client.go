package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
	"golang.org/x/sync/semaphore"
)

// Default client settings.
const (
	DefaultBaseURL       = "https://api.lingora.com"
	DefaultTimeout       = 30 * time.Second
	DefaultMaxRetries    = 3
	DefaultMaxConcurrent = 5
	DefaultUserAgent     = "lingora-go"
)

// maxResponseBody caps how much of a response body is read.
const maxResponseBody = 1 << 20

// Result is a parsed JSON response object. Server fields are passed
// through to the caller without reshaping.
type Result map[string]any

// Request describes one logical API call. Exactly one body encoding is
// active: when Files is non-empty the request is sent as multipart form
// data and Body entries become stringified form fields, otherwise Body is
// serialized as JSON.
type Request struct {
	Method string
	Path   string
	Body   map[string]any
	Files  map[string]string // form field name -> local file path
	Query  url.Values
}

// Config configures the API client.
type Config struct {
	// APIKey authenticates every request via the X-API-KEY header. Required.
	APIKey string
	// BaseURL is the service root. A trailing slash is stripped.
	// Defaults to DefaultBaseURL.
	BaseURL string
	// Timeout bounds each individual HTTP attempt. Defaults to DefaultTimeout.
	Timeout time.Duration
	// MaxRetries is the number of retries after the initial attempt for
	// connection-level failures. Must be >= 0.
	MaxRetries int
	// MaxConcurrent bounds the number of simultaneously in-flight requests.
	// Defaults to DefaultMaxConcurrent.
	MaxConcurrent int
	// HTTPClient overrides the underlying HTTP client. The configured
	// Timeout is not applied to a custom client.
	HTTPClient *http.Client
	// UserAgent identifies the client. Defaults to DefaultUserAgent.
	UserAgent string
	// Logger receives debug events for dispatch and retry decisions.
	// Defaults to a no-op logger.
	Logger *zerolog.Logger
	// Breaker, when set, guards each HTTP attempt with a circuit breaker.
	Breaker *gobreaker.CircuitBreaker
}

// Client executes API calls with admission control, retry, and error
// classification. It is safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
	maxRetries int

	sem           *semaphore.Weighted
	maxConcurrent int64
	inFlight      atomic.Int64

	log     zerolog.Logger
	breaker *gobreaker.CircuitBreaker
}

// NewClient creates a new API client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("API key is required")
	}
	if cfg.MaxRetries < 0 {
		return nil, fmt.Errorf("max retries must be >= 0, got %d", cfg.MaxRetries)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	maxConcurrent := cfg.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrent
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}

	return &Client{
		baseURL:       baseURL,
		apiKey:        cfg.APIKey,
		userAgent:     userAgent,
		httpClient:    httpClient,
		maxRetries:    cfg.MaxRetries,
		sem:           semaphore.NewWeighted(int64(maxConcurrent)),
		maxConcurrent: int64(maxConcurrent),
		log:           log,
		breaker:       cfg.Breaker,
	}, nil
}

// MaxConcurrent returns the configured in-flight request limit.
func (c *Client) MaxConcurrent() int {
	return int(c.maxConcurrent)
}

// InFlight returns the number of requests currently holding an admission slot.
func (c *Client) InFlight() int64 {
	return c.inFlight.Load()
}

// Do executes one logical API call: it encodes the request body, waits for
// an admission slot, then dispatches with retries for connection-level
// failures. Non-2xx responses are classified and returned without retrying.
// The admission slot is held across retries; a retrying call still
// represents one outstanding request.
func (c *Client) Do(ctx context.Context, rq Request) (Result, error) {
	payload, contentType, err := encodeBody(rq)
	if err != nil {
		return nil, err
	}

	if err := c.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer c.sem.Release(1)

	c.inFlight.Add(1)
	defer c.inFlight.Add(-1)

	var lastErr error
	for attempt := 0; ; attempt++ {
		c.log.Debug().
			Str("method", rq.Method).
			Str("path", rq.Path).
			Int("attempt", attempt).
			Msg("dispatching request")

		result, err := c.dispatch(ctx, rq, payload, contentType)
		if err == nil {
			return result, nil
		}

		var netErr *NetworkError
		if !errors.As(err, &netErr) {
			// Application-level error or a request that could not be
			// built. Never retried.
			return nil, err
		}

		lastErr = netErr.Err
		if attempt >= c.maxRetries {
			break
		}

		delay := retryDelay(attempt)
		c.log.Debug().
			Str("path", rq.Path).
			Dur("delay", delay).
			Err(netErr.Err).
			Msg("transient failure, backing off")
		if err := sleep(ctx, delay); err != nil {
			return nil, err
		}
	}

	return nil, &Error{
		Kind:    KindGeneric,
		Message: fmt.Sprintf("request failed after %d retries: %v", c.maxRetries, lastErr),
		Cause:   lastErr,
	}
}

// dispatch performs a single HTTP attempt.
func (c *Client) dispatch(ctx context.Context, rq Request, payload []byte, contentType string) (Result, error) {
	fullURL := c.baseURL + rq.Path
	if len(rq.Query) > 0 {
		fullURL += "?" + rq.Query.Encode()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, rq.Method, fullURL, body)
	if err != nil {
		return nil, &Error{
			Kind:    KindGeneric,
			Message: fmt.Sprintf("create request: %v", err),
			Cause:   err,
		}
	}

	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.roundTrip(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, &Error{
				Kind:    KindGeneric,
				Message: fmt.Sprintf("circuit breaker rejected request: %v", err),
				Cause:   err,
			}
		}
		return nil, &NetworkError{Err: err, URL: fullURL}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("read response: %w", err), URL: fullURL}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return parseResult(raw), nil
	}

	return nil, classifyStatus(resp.StatusCode, raw)
}

// roundTrip sends the request, through the circuit breaker when one is
// configured.
func (c *Client) roundTrip(req *http.Request) (*http.Response, error) {
	if c.breaker == nil {
		return c.httpClient.Do(req)
	}
	v, err := c.breaker.Execute(func() (any, error) {
		return c.httpClient.Do(req)
	})
	if err != nil {
		return nil, err
	}
	return v.(*http.Response), nil
}

// encodeBody serializes the request payload: JSON when no files are
// attached, multipart form data otherwise. A file path that does not exist
// fails fast with a validation error before any network attempt.
func encodeBody(rq Request) (payload []byte, contentType string, err error) {
	if len(rq.Files) == 0 {
		if rq.Body == nil {
			return nil, "", nil
		}
		data, err := json.Marshal(rq.Body)
		if err != nil {
			return nil, "", &Error{
				Kind:    KindGeneric,
				Message: fmt.Sprintf("marshal request body: %v", err),
				Cause:   err,
			}
		}
		return data, "application/json", nil
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, name := range sortedKeys(rq.Body) {
		if err := w.WriteField(name, formValue(rq.Body[name])); err != nil {
			return nil, "", &Error{
				Kind:    KindGeneric,
				Message: fmt.Sprintf("write form field %q: %v", name, err),
				Cause:   err,
			}
		}
	}

	for _, name := range sortedFileKeys(rq.Files) {
		if err := writeFilePart(w, name, rq.Files[name]); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", &Error{
			Kind:    KindGeneric,
			Message: fmt.Sprintf("finalize multipart body: %v", err),
			Cause:   err,
		}
	}

	return buf.Bytes(), w.FormDataContentType(), nil
}

func writeFilePart(w *multipart.Writer, name, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &Error{
			Kind:    KindValidation,
			Message: fmt.Sprintf("file not found: %s", path),
			Cause:   err,
		}
	}
	defer f.Close()

	part, err := w.CreateFormFile(name, filepath.Base(path))
	if err != nil {
		return &Error{
			Kind:    KindGeneric,
			Message: fmt.Sprintf("create file part %q: %v", name, err),
			Cause:   err,
		}
	}
	if _, err := io.Copy(part, f); err != nil {
		return &Error{
			Kind:    KindGeneric,
			Message: fmt.Sprintf("read file %s: %v", path, err),
			Cause:   err,
		}
	}
	return nil
}

// formValue renders a body value as a form field. Strings pass through,
// other scalars use their natural formatting, and composite values are
// encoded as JSON so list parameters survive the multipart switch.
func formValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool, int, int32, int64, float32, float64:
		return fmt.Sprintf("%v", t)
	default:
		data, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t)
		}
		return string(data)
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedFileKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// parseResult decodes a successful response body. An absent, empty, or
// non-object body yields an empty result rather than an error.
func parseResult(raw []byte) Result {
	if len(bytes.TrimSpace(raw)) == 0 {
		return Result{}
	}
	res := Result{}
	if err := json.Unmarshal(raw, &res); err != nil {
		return Result{}
	}
	return res
}

// classifyStatus maps a non-2xx response to a typed error. The message
// prefers a "detail" field from the parsed error body when present.
func classifyStatus(status int, raw []byte) *Error {
	var payload Result
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &payload)
	}

	msg := fmt.Sprintf("API request failed with status %d", status)
	if detail, ok := payload["detail"].(string); ok && detail != "" {
		msg = detail
	}

	var kind Kind
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = KindAuthentication
	case http.StatusPaymentRequired:
		kind = KindInsufficientCredits
	case http.StatusTooManyRequests:
		kind = KindRateLimit
	default:
		kind = KindGeneric
	}

	return &Error{
		Kind:       kind,
		StatusCode: status,
		Message:    msg,
		Response:   payload,
	}
}
