//go:build integration

package integration

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	lingora "github.com/lingora/client-go"
)

var (
	apiKey  string
	baseURL string
)

func TestMain(m *testing.M) {
	// Load .env file if it exists (won't error if missing)
	if err := godotenv.Load("../.env"); err != nil {
		os.Stderr.WriteString("Note: .env file not found at project root\n")
	}

	apiKey = os.Getenv("LINGORA_API_KEY")
	baseURL = os.Getenv("LINGORA_URL")

	if apiKey == "" {
		os.Stderr.WriteString("Skipping integration tests: LINGORA_API_KEY not set\n")
		os.Exit(0)
	}

	os.Exit(m.Run())
}

func newClient(t *testing.T) *lingora.Client {
	t.Helper()

	opts := []lingora.Option{
		lingora.WithTimeout(30 * time.Second),
	}
	if baseURL != "" {
		opts = append(opts, lingora.WithBaseURL(baseURL))
	}

	client, err := lingora.New(apiKey, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return client
}

func TestIntegration_Translate(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	res, err := client.Translate(ctx, "Hello, world", "fr")
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if res["translation"] == nil {
		t.Error("translation field missing from response")
	}
}

func TestIntegration_DetectLanguage(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	res, err := client.DetectLanguage(ctx, "Bonjour tout le monde")
	if err != nil {
		t.Fatalf("DetectLanguage() error = %v", err)
	}
	t.Logf("Detected: %v", res["language"])
}

func TestIntegration_SupportedLanguages(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	res, err := client.SupportedLanguages(ctx)
	if err != nil {
		t.Fatalf("SupportedLanguages() error = %v", err)
	}
	if res["languages"] == nil {
		t.Error("languages field missing from response")
	}
}

func TestIntegration_AccountSummary(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	res, err := client.AccountSummary(ctx)
	if err != nil {
		t.Fatalf("AccountSummary() error = %v", err)
	}
	t.Logf("Account: %v", res)
}
