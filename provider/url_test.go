package provider

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/teilomillet/azureai/config"
)

func TestBuildEndpointResourceNameTemplate(t *testing.T) {
	cfg := &config.Config{
		ResourceName: "acme",
		APIKey:       "k",
		APIVersion:   "2024-10-01-preview",
	}

	tests := []struct {
		kind ModelKind
		want string
	}{
		{KindChat, "https://acme.openai.azure.com/openai/deployments/dep/chat/completions?api-version=2024-10-01-preview"},
		{KindCompletion, "https://acme.openai.azure.com/openai/deployments/dep/completions?api-version=2024-10-01-preview"},
		{KindEmbedding, "https://acme.openai.azure.com/openai/deployments/dep/embeddings?api-version=2024-10-01-preview"},
		{KindImage, "https://acme.openai.azure.com/openai/deployments/dep/images/generations?api-version=2024-10-01-preview"},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, buildEndpoint(cfg, "dep", tt.kind))
		})
	}
}

func TestBuildEndpointBaseURLTemplate(t *testing.T) {
	cfg := &config.Config{
		BaseURL:    "https://proxy.example.com",
		APIKey:     "k",
		APIVersion: "2024-10-01-preview",
	}

	got := buildEndpoint(cfg, "embdep", KindEmbedding)
	assert.Equal(t, "https://proxy.example.com/embdep/embeddings?api-version=2024-10-01-preview", got)
}

func TestBuildEndpointBaseURLWinsOverResourceName(t *testing.T) {
	cfg := &config.Config{
		ResourceName: "acme",
		BaseURL:      "https://proxy.example.com",
		APIKey:       "k",
		APIVersion:   "2024-10-01-preview",
	}

	got := buildEndpoint(cfg, "dep", KindChat)
	assert.True(t, strings.HasPrefix(got, "https://proxy.example.com/dep"))
	assert.NotContains(t, got, "acme")
}

func TestBuildEndpointTrimsTrailingSlash(t *testing.T) {
	cfg := &config.Config{
		BaseURL:    "https://proxy.example.com/",
		APIKey:     "k",
		APIVersion: "2024-10-01-preview",
	}

	got := buildEndpoint(cfg, "dep", KindChat)
	assert.Equal(t, "https://proxy.example.com/dep/chat/completions?api-version=2024-10-01-preview", got)
}

func TestBuildURLDeterministic(t *testing.T) {
	cfg := &config.Config{
		ResourceName: "acme",
		APIKey:       "k",
		APIVersion:   "2024-10-01-preview",
	}

	extra := map[string]string{"b": "2", "a": "1"}
	first := buildURL(cfg, "dep", "/chat/completions", extra)
	second := buildURL(cfg, "dep", "/chat/completions", extra)
	assert.Equal(t, first, second)
	// Sorted query keys keep the string stable for cache-key use.
	assert.Contains(t, first, "a=1&api-version=2024-10-01-preview&b=2")
}

func TestBuildURLNeverEmbedsCredential(t *testing.T) {
	cfg := &config.Config{
		ResourceName: "acme",
		APIKey:       "super-secret",
		APIVersion:   "2024-10-01-preview",
	}

	assert.NotContains(t, buildURL(cfg, "dep", "/embeddings", nil), "super-secret")
}
