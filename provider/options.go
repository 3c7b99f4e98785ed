package provider

import (
	"encoding/json"
)

// ModelOptions is the closed set of per-kind option variants. Each factory
// call validates and normalizes its options into a fresh value owned by the
// returned handle.
type ModelOptions interface {
	Kind() ModelKind
}

// ChatOptions configures a chat-completions model.
type ChatOptions struct {
	// LogitBias maps token ids (as decimal strings, matching the wire
	// format) to a bias in [-100, 100].
	LogitBias map[string]float64 `option:"logitBias"`

	// Logprobs accepts a bool (on/off) or a non-negative integer count.
	Logprobs any `option:"logprobs"`

	// ParallelToolCalls defaults to true when unset.
	ParallelToolCalls *bool `option:"parallelToolCalls"`

	User string `option:"user"`

	// ResponseSchema, when set, is reflected into a JSON schema for
	// structured responses. The generated document is stored in
	// ResponseSchemaJSON by the factory.
	ResponseSchema     any             `option:"responseSchema"`
	ResponseSchemaJSON json.RawMessage `option:"responseSchemaJSON"`
}

func (o *ChatOptions) Kind() ModelKind { return KindChat }

func (o *ChatOptions) validate() (*ChatOptions, error) {
	out := *o
	if err := checkLogitBias(out.LogitBias); err != nil {
		return nil, err
	}
	out.LogitBias = copyBias(out.LogitBias)
	if err := checkLogprobs(out.Logprobs); err != nil {
		return nil, err
	}
	if out.ParallelToolCalls == nil {
		enabled := true
		out.ParallelToolCalls = &enabled
	}
	if out.ResponseSchema != nil && out.ResponseSchemaJSON == nil {
		raw, err := reflectSchema(out.ResponseSchema)
		if err != nil {
			return nil, &ValidationError{Field: "responseSchema", Reason: err.Error()}
		}
		out.ResponseSchemaJSON = raw
	}
	return &out, nil
}

// CompletionOptions configures a legacy text-completions model. Only
// instruct-style deployments serve this endpoint; the factory does not
// enforce that, the remote service rejects mismatches.
type CompletionOptions struct {
	LogitBias map[string]float64 `option:"logitBias"`
	Logprobs  any                `option:"logprobs"`
	User      string             `option:"user"`

	// Echo returns the prompt alongside the completion.
	Echo *bool `option:"echo"`

	// Suffix is appended after the inserted completion.
	Suffix string `option:"suffix"`
}

func (o *CompletionOptions) Kind() ModelKind { return KindCompletion }

func (o *CompletionOptions) validate() (*CompletionOptions, error) {
	out := *o
	if err := checkLogitBias(out.LogitBias); err != nil {
		return nil, err
	}
	out.LogitBias = copyBias(out.LogitBias)
	if err := checkLogprobs(out.Logprobs); err != nil {
		return nil, err
	}
	return &out, nil
}

// EmbeddingOptions configures an embeddings model.
type EmbeddingOptions struct {
	// Dimensions requests a reduced output size. Whether a given
	// deployment supports it is the remote service's call.
	Dimensions int `option:"dimensions" validate:"omitempty,gt=0"`

	User string `option:"user"`
}

func (o *EmbeddingOptions) Kind() ModelKind { return KindEmbedding }

func (o *EmbeddingOptions) validate() (*EmbeddingOptions, error) {
	out := *o
	if err := runTagChecks(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ImageResponseFormat selects how generated images are returned.
type ImageResponseFormat string

const (
	ImageResponseFormatURL     ImageResponseFormat = "url"
	ImageResponseFormatB64JSON ImageResponseFormat = "b64_json"
)

// ImageOptions configures an image-generations model.
type ImageOptions struct {
	User string `option:"user"`

	// ResponseFormat defaults to "url".
	ResponseFormat ImageResponseFormat `option:"responseFormat" validate:"omitempty,oneof=url b64_json"`

	// Size is checked against the capability table for ModelVersion.
	Size string `option:"size"`

	// ModelVersion hints at the backing model (e.g. ModelVersionDallE3).
	// The provider cannot introspect a live deployment, so the hint comes
	// from the caller; when absent, size checking is skipped.
	ModelVersion ModelVersion `option:"modelVersion"`
}

func (o *ImageOptions) Kind() ModelKind { return KindImage }

func (o *ImageOptions) validate() (*ImageOptions, error) {
	out := *o
	if err := runTagChecks(&out); err != nil {
		return nil, err
	}
	if out.ResponseFormat == "" {
		out.ResponseFormat = ImageResponseFormatURL
	}
	if out.Size != "" && !SupportedImageSize(out.ModelVersion, out.Size) {
		return nil, &ValidationError{Field: "size", Reason: "unsupported for model version"}
	}
	return &out, nil
}

func copyBias(bias map[string]float64) map[string]float64 {
	if bias == nil {
		return nil
	}
	out := make(map[string]float64, len(bias))
	for k, v := range bias {
		out[k] = v
	}
	return out
}
