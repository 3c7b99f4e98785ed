package provider

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/teilomillet/azureai/config"
)

const azureHostSuffix = ".openai.azure.com"

// buildEndpoint assembles the fully-qualified endpoint for one model kind.
func buildEndpoint(cfg *config.Config, deploymentID string, kind ModelKind) string {
	return buildURL(cfg, deploymentID, kind.pathSuffix(), nil)
}

// buildURL is pure: the same inputs always yield the same string, so callers
// may use the result as a cache key. The credential never appears in the URL;
// it travels in the api-key header.
//
// With BaseURL set the resource-name template is ignored entirely, even when
// ResourceName is also configured.
func buildURL(cfg *config.Config, deploymentID, pathSuffix string, extraQuery map[string]string) string {
	query := url.Values{}
	query.Set("api-version", cfg.APIVersion)
	for k, v := range extraQuery {
		query.Set(k, v)
	}

	var base string
	if cfg.BaseURL != "" {
		base = strings.TrimSuffix(cfg.BaseURL, "/") + "/" + deploymentID + pathSuffix
	} else {
		base = fmt.Sprintf("https://%s%s/openai/deployments/%s%s",
			cfg.ResourceName, azureHostSuffix, deploymentID, pathSuffix)
	}

	// url.Values.Encode sorts keys, keeping the output deterministic.
	return base + "?" + query.Encode()
}
