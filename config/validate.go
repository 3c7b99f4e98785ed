package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance for config structs.
var validate = validator.New()

// ConfigError reports a missing or malformed provider-wide setting. It is
// raised at provider construction and is not recoverable by retry.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Validate checks the required-field invariants: an API key must be present,
// and exactly one addressing mode (ResourceName or BaseURL) must resolve.
// BaseURL and ResourceName may coexist; BaseURL silently takes precedence.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return &ConfigError{
			Field:   "apiKey",
			Message: "missing; set it explicitly or via AZURE_API_KEY",
		}
	}
	if c.ResourceName == "" && c.BaseURL == "" {
		return &ConfigError{
			Field:   "resourceName",
			Message: "either resourceName or baseURL is required; set AZURE_RESOURCE_NAME or use SetBaseURL",
		}
	}

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return &ConfigError{
				Field:   verrs[0].Field(),
				Message: fmt.Sprintf("failed %q validation", verrs[0].Tag()),
			}
		}
		return err
	}
	return nil
}
