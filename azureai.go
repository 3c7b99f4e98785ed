// Package azureai is a provider client for the Azure OpenAI API family. It
// resolves a provider-wide configuration once and mints immutable model
// handles for chat, completion, embedding, and image deployments; the handles
// carry everything an external request layer needs (endpoint, headers,
// validated options) and perform no I/O themselves.
//
//	p, err := azureai.New(
//		azureai.SetResourceName("acme"),
//		azureai.SetAPIKey("..."),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	chat, err := p.ChatModel("gpt4dep", nil)
package azureai

import (
	"github.com/teilomillet/azureai/config"
	"github.com/teilomillet/azureai/provider"
	"github.com/teilomillet/azureai/utils"
)

// Type aliases bridging the public surface to the underlying packages.
type (
	Provider            = provider.Provider
	ModelHandle         = provider.ModelHandle
	ModelKind           = provider.ModelKind
	ModelOptions        = provider.ModelOptions
	ChatOptions         = provider.ChatOptions
	CompletionOptions   = provider.CompletionOptions
	EmbeddingOptions    = provider.EmbeddingOptions
	ImageOptions        = provider.ImageOptions
	ImageResponseFormat = provider.ImageResponseFormat
	ModelVersion        = provider.ModelVersion
	RequestExecutor     = provider.RequestExecutor
	ValidationError     = provider.ValidationError

	Config      = config.Config
	ConfigError = config.ConfigError
	Option      = config.Option

	LogLevel = utils.LogLevel
)

const (
	KindChat       = provider.KindChat
	KindCompletion = provider.KindCompletion
	KindEmbedding  = provider.KindEmbedding
	KindImage      = provider.KindImage

	ModelVersionDallE2 = provider.ModelVersionDallE2
	ModelVersionDallE3 = provider.ModelVersionDallE3

	ImageResponseFormatURL     = provider.ImageResponseFormatURL
	ImageResponseFormatB64JSON = provider.ImageResponseFormatB64JSON

	DefaultAPIVersion = config.DefaultAPIVersion

	LogLevelOff   = utils.LogLevelOff
	LogLevelError = utils.LogLevelError
	LogLevelWarn  = utils.LogLevelWarn
	LogLevelInfo  = utils.LogLevelInfo
	LogLevelDebug = utils.LogLevelDebug
)

// Configuration options re-exported for single-import use.
var (
	SetResourceName    = config.SetResourceName
	SetAPIKey          = config.SetAPIKey
	SetAPIVersion      = config.SetAPIVersion
	SetBaseURL         = config.SetBaseURL
	SetExtraHeaders    = config.SetExtraHeaders
	SetLogLevel        = config.SetLogLevel
	SetHTTPClient      = config.SetHTTPClient
	SetRateLimit       = config.SetRateLimit
	SetRequestExecutor = config.SetRequestExecutor
)

// New creates a provider instance from the given options, falling back to
// AZURE_RESOURCE_NAME / AZURE_API_KEY / AZURE_API_VERSION environment
// variables for anything not set explicitly.
func New(opts ...Option) (*Provider, error) {
	return provider.New(opts...)
}
