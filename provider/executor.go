package provider

import (
	"net/http"
	"time"

	"github.com/teilomillet/azureai/config"
)

// RequestExecutor is re-exported so callers wiring a custom transport do not
// need to import the config package directly.
type RequestExecutor = config.RequestExecutor

const defaultRequestTimeout = 30 * time.Second

// newExecutor builds the transport handed to the external generation layer.
// An explicit executor from the config wins; otherwise a net/http-backed one
// is assembled, waiting on the configured rate limiter before each call.
func newExecutor(cfg *config.Config) RequestExecutor {
	if cfg.Executor != nil {
		return cfg.Executor
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultRequestTimeout}
	}
	limiter := cfg.RateLimiter

	return func(req *http.Request) (*http.Response, error) {
		if limiter != nil {
			if err := limiter.Wait(req.Context()); err != nil {
				return nil, err
			}
		}
		return client.Do(req)
	}
}
