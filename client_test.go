package lingora

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newServerClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New("test-key", append([]Option{WithBaseURL(server.URL)}, opts...)...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return client
}

func okHandler(body map[string]any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(body)
	}
}

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := New("")
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("error = %v, want ErrMissingAPIKey", err)
	}
}

func TestNew_RejectsNegativeRetries(t *testing.T) {
	_, err := New("test-key", WithMaxRetries(-1))
	if !errors.Is(err, ErrValidation) {
		t.Errorf("error = %v, want validation error", err)
	}
}

func TestNew_RejectsZeroConcurrency(t *testing.T) {
	_, err := New("test-key", WithMaxConcurrent(0))
	if !errors.Is(err, ErrValidation) {
		t.Errorf("error = %v, want validation error", err)
	}
}

func TestNew_WithOptions(t *testing.T) {
	client, err := New("test-key",
		WithBaseURL("https://example.com"),
		WithTimeout(60*time.Second),
		WithMaxRetries(5),
		WithMaxConcurrent(2),
		WithUserAgent("custom-agent/1.0"),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if client.maxConcurrent != 2 {
		t.Errorf("maxConcurrent = %d, want 2", client.maxConcurrent)
	}
}

func TestClient_DetectLanguage(t *testing.T) {
	client := newServerClient(t, okHandler(map[string]any{"language": "fr", "confidence": 0.98}))

	res, err := client.DetectLanguage(context.Background(), "bonjour")
	if err != nil {
		t.Fatalf("DetectLanguage() error = %v", err)
	}
	if res["language"] != "fr" {
		t.Errorf("language = %v, want fr", res["language"])
	}
}

func TestClient_DetectLanguage_EmptyText(t *testing.T) {
	client := newServerClient(t, okHandler(nil))

	_, err := client.DetectLanguage(context.Background(), "")
	if !errors.Is(err, ErrValidation) {
		t.Errorf("error = %v, want validation error", err)
	}
}

func TestClient_AccountSummary(t *testing.T) {
	client := newServerClient(t, okHandler(map[string]any{"credits": 12345, "plan": "pro"}))

	res, err := client.AccountSummary(context.Background())
	if err != nil {
		t.Fatalf("AccountSummary() error = %v", err)
	}
	if res["plan"] != "pro" {
		t.Errorf("plan = %v, want pro", res["plan"])
	}
}

func TestClient_SupportedLanguages(t *testing.T) {
	client := newServerClient(t, okHandler(map[string]any{
		"languages": []any{"en", "fr", "de"},
	}))

	res, err := client.SupportedLanguages(context.Background())
	if err != nil {
		t.Fatalf("SupportedLanguages() error = %v", err)
	}
	langs, ok := res["languages"].([]any)
	if !ok || len(langs) != 3 {
		t.Errorf("languages = %v, want 3 entries", res["languages"])
	}
}
