// Package config resolves the provider-wide configuration for the Azure
// OpenAI client: explicit options layered over environment variables layered
// over built-in defaults.
package config

import (
	"net/http"

	"github.com/caarlos0/env/v11"
	"golang.org/x/time/rate"

	"github.com/teilomillet/azureai/utils"
)

// DefaultAPIVersion is used when neither an explicit option nor
// AZURE_API_VERSION supplies one.
const DefaultAPIVersion = "2024-10-01-preview"

// RequestExecutor is the pluggable transport invoked by the external
// generation layer. The provider supplies a default over net/http; callers
// may swap in their own via SetRequestExecutor.
type RequestExecutor func(*http.Request) (*http.Response, error)

// Config is the resolved provider configuration. It is populated once by
// LoadConfig and treated as immutable afterwards; every model handle created
// by the provider shares it.
type Config struct {
	// ResourceName identifies the Azure resource. Required unless BaseURL
	// is set.
	ResourceName string `env:"AZURE_RESOURCE_NAME"`

	// APIKey authenticates every request via the api-key header.
	APIKey string `env:"AZURE_API_KEY"`

	// APIVersion is appended to every endpoint as the api-version query
	// parameter.
	APIVersion string `env:"AZURE_API_VERSION" envDefault:"2024-10-01-preview"`

	// BaseURL overrides resource-name addressing entirely. When both are
	// set, BaseURL wins and ResourceName is ignored.
	BaseURL string `validate:"omitempty,url"`

	// ExtraHeaders are merged into the headers of every model handle.
	ExtraHeaders map[string]string

	LogLevel utils.LogLevel `env:"AZURE_LOG_LEVEL" envDefault:"WARN"`

	// HTTPClient backs the default request executor when Executor is nil.
	HTTPClient *http.Client

	// RateLimiter, when set, is waited on by the default executor before
	// each outbound request.
	RateLimiter *rate.Limiter

	// Executor replaces the default net/http transport.
	Executor RequestExecutor
}

// Option mutates a Config during resolution.
type Option func(*Config)

// LoadConfig resolves a Config: environment values first, then explicit
// options, then required-field checks. It is the only place environment
// variables are read.
func LoadConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		ExtraHeaders: make(map[string]string),
	}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	ApplyOptions(cfg, opts...)

	if cfg.APIVersion == "" {
		cfg.APIVersion = DefaultAPIVersion
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyOptions applies explicit options over the environment-sourced values.
func ApplyOptions(cfg *Config, opts ...Option) {
	for _, opt := range opts {
		opt(cfg)
	}
}

func SetResourceName(name string) Option {
	return func(c *Config) {
		c.ResourceName = name
	}
}

func SetAPIKey(apiKey string) Option {
	return func(c *Config) {
		c.APIKey = apiKey
	}
}

func SetAPIVersion(version string) Option {
	return func(c *Config) {
		c.APIVersion = version
	}
}

func SetBaseURL(baseURL string) Option {
	return func(c *Config) {
		c.BaseURL = baseURL
	}
}

func SetExtraHeaders(headers map[string]string) Option {
	return func(c *Config) {
		if c.ExtraHeaders == nil {
			c.ExtraHeaders = make(map[string]string)
		}
		for k, v := range headers {
			c.ExtraHeaders[k] = v
		}
	}
}

func SetLogLevel(level utils.LogLevel) Option {
	return func(c *Config) {
		c.LogLevel = level
	}
}

func SetHTTPClient(client *http.Client) Option {
	return func(c *Config) {
		c.HTTPClient = client
	}
}

// SetRateLimit throttles the default request executor to r events with the
// given burst.
func SetRateLimit(r rate.Limit, burst int) Option {
	return func(c *Config) {
		c.RateLimiter = rate.NewLimiter(r, burst)
	}
}

func SetRequestExecutor(exec RequestExecutor) Option {
	return func(c *Config) {
		c.Executor = exec
	}
}
