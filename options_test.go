package lingora

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
)

func TestWithLogger_EmitsPipelineEvents(t *testing.T) {
	var buf strings.Builder
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	client := newServerClient(t, okHandler(map[string]any{"ok": true}), WithLogger(logger))

	if _, err := client.SupportedLanguages(context.Background()); err != nil {
		t.Fatalf("SupportedLanguages() error = %v", err)
	}
	if !strings.Contains(buf.String(), "dispatching request") {
		t.Errorf("log output missing dispatch event: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "/v2/supported_languages") {
		t.Errorf("log output missing request path: %q", buf.String())
	}
}

func TestWithCircuitBreaker_PassesHealthyRequests(t *testing.T) {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{Name: "lingora"})

	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"language": "en"})
	}, WithCircuitBreaker(breaker))

	res, err := client.DetectLanguage(context.Background(), "hello")
	if err != nil {
		t.Fatalf("DetectLanguage() error = %v", err)
	}
	if res["language"] != "en" {
		t.Errorf("language = %v, want en", res["language"])
	}
}

func TestWithUserAgent(t *testing.T) {
	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "my-app/2.0" {
			t.Errorf("User-Agent = %s, want my-app/2.0", got)
		}
		json.NewEncoder(w).Encode(map[string]bool{"ok": true})
	}, WithUserAgent("my-app/2.0"))

	if _, err := client.SupportedLanguages(context.Background()); err != nil {
		t.Fatalf("SupportedLanguages() error = %v", err)
	}
}

func TestDefaultUserAgent_CarriesVersion(t *testing.T) {
	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		want := "lingora-go/" + Version
		if got := r.Header.Get("User-Agent"); got != want {
			t.Errorf("User-Agent = %s, want %s", got, want)
		}
		json.NewEncoder(w).Encode(map[string]bool{"ok": true})
	})

	if _, err := client.SupportedLanguages(context.Background()); err != nil {
		t.Fatalf("SupportedLanguages() error = %v", err)
	}
}
