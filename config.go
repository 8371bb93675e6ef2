package lingora

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvConfig is populated from LINGORA_* environment variables by NewFromEnv.
type EnvConfig struct {
	APIKey        string        `envconfig:"API_KEY" required:"true"`
	BaseURL       string        `envconfig:"BASE_URL"`
	Timeout       time.Duration `envconfig:"TIMEOUT" default:"30s"`
	MaxRetries    int           `envconfig:"MAX_RETRIES" default:"3"`
	MaxConcurrent int           `envconfig:"MAX_CONCURRENT" default:"5"`
}

// NewFromEnv builds a client from LINGORA_* environment variables
// (LINGORA_API_KEY, LINGORA_BASE_URL, LINGORA_TIMEOUT, LINGORA_MAX_RETRIES,
// LINGORA_MAX_CONCURRENT). Explicit options override environment values.
func NewFromEnv(opts ...Option) (*Client, error) {
	var ec EnvConfig
	if err := envconfig.Process("lingora", &ec); err != nil {
		return nil, fmt.Errorf("load environment config: %w", err)
	}

	envOpts := []Option{
		WithTimeout(ec.Timeout),
		WithMaxRetries(ec.MaxRetries),
		WithMaxConcurrent(ec.MaxConcurrent),
	}
	if ec.BaseURL != "" {
		envOpts = append(envOpts, WithBaseURL(ec.BaseURL))
	}

	return New(ec.APIKey, append(envOpts, opts...)...)
}
