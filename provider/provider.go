// Package provider implements the Azure OpenAI model factory: a provider
// instance resolved once from configuration, exposing sub-factories that bind
// a deployment id and validated options into immutable model handles. Factory
// calls are pure construction steps; no network I/O happens here.
package provider

import (
	"github.com/teilomillet/azureai/config"
	"github.com/teilomillet/azureai/utils"
)

// Provider is the resolved provider instance. Construct it once and share it;
// all sub-factories reuse the same immutable configuration.
type Provider struct {
	cfg      *config.Config
	logger   utils.Logger
	executor RequestExecutor
}

// New resolves the configuration (explicit options over environment over
// defaults) and returns a ready provider. A missing API key or addressing
// field surfaces as a *config.ConfigError.
func New(opts ...config.Option) (*Provider, error) {
	cfg, err := config.LoadConfig(opts...)
	if err != nil {
		return nil, err
	}
	return NewWithConfig(cfg), nil
}

// NewWithConfig wraps an already-resolved configuration. The config must have
// passed Validate; use New unless the caller manages resolution itself.
func NewWithConfig(cfg *config.Config) *Provider {
	logger := utils.NewLogger(cfg.LogLevel)
	if cfg.BaseURL != "" && cfg.ResourceName != "" {
		logger.Debug("baseURL set, resourceName ignored for endpoint assembly",
			"baseURL", cfg.BaseURL, "resourceName", cfg.ResourceName)
	}
	return &Provider{
		cfg:      cfg,
		logger:   logger,
		executor: newExecutor(cfg),
	}
}

// Executor returns the transport the external generation layer should use to
// issue requests for this provider's handles.
func (p *Provider) Executor() RequestExecutor {
	return p.executor
}

// SetLogger replaces the provider's logger. Intended for tests and embedders
// with their own logging pipeline.
func (p *Provider) SetLogger(logger utils.Logger) {
	p.logger = logger
}

// ChatModel binds a chat-completions deployment. Passing nil options is
// equivalent to passing the zero value.
func (p *Provider) ChatModel(deploymentID string, opts *ChatOptions) (*ModelHandle, error) {
	if opts == nil {
		opts = &ChatOptions{}
	}
	validated, err := opts.validate()
	if err != nil {
		return nil, err
	}
	return p.newHandle(deploymentID, KindChat, validated), nil
}

// CompletionModel binds a legacy text-completions deployment. Only
// instruct-style deployments serve this endpoint; the remote service rejects
// others.
func (p *Provider) CompletionModel(deploymentID string, opts *CompletionOptions) (*ModelHandle, error) {
	if opts == nil {
		opts = &CompletionOptions{}
	}
	validated, err := opts.validate()
	if err != nil {
		return nil, err
	}
	return p.newHandle(deploymentID, KindCompletion, validated), nil
}

// EmbeddingModel binds an embeddings deployment.
func (p *Provider) EmbeddingModel(deploymentID string, opts *EmbeddingOptions) (*ModelHandle, error) {
	if opts == nil {
		opts = &EmbeddingOptions{}
	}
	validated, err := opts.validate()
	if err != nil {
		return nil, err
	}
	return p.newHandle(deploymentID, KindEmbedding, validated), nil
}

// ImageModel binds an image-generations deployment. The requested size is
// checked against the capability table when the options carry a model-version
// hint.
func (p *Provider) ImageModel(deploymentID string, opts *ImageOptions) (*ModelHandle, error) {
	if opts == nil {
		opts = &ImageOptions{}
	}
	validated, err := opts.validate()
	if err != nil {
		return nil, err
	}
	return p.newHandle(deploymentID, KindImage, validated), nil
}

func (p *Provider) newHandle(deploymentID string, kind ModelKind, opts ModelOptions) *ModelHandle {
	handle := &ModelHandle{
		DeploymentID: deploymentID,
		EndpointURL:  buildEndpoint(p.cfg, deploymentID, kind),
		Headers:      p.headers(),
		Kind:         kind,
		Options:      opts,
	}
	p.logger.Debug("model handle created",
		"kind", kind.String(), "deployment", deploymentID, "endpoint", handle.EndpointURL)
	return handle
}

// headers builds a fresh header map per handle so handles never share mutable
// state. Extra headers override the defaults, api-key included.
func (p *Provider) headers() map[string]string {
	headers := map[string]string{
		"Content-Type": "application/json",
		"api-key":      p.cfg.APIKey,
	}
	for k, v := range p.cfg.ExtraHeaders {
		headers[k] = v
	}
	return headers
}
