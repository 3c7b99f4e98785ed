package provider

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// fallbackEncodingModel is used when no encoding is registered for the
// deployment's name. Deployment ids are caller-chosen, so misses are common.
const fallbackEncodingModel = "gpt-4o"

// CountTokens estimates how many prompt tokens text occupies for this
// handle's model, trying the deployment id as a model name first. Image
// handles have no text token budget and always report zero.
func (h *ModelHandle) CountTokens(text string) (int, error) {
	if h.Kind == KindImage {
		return 0, nil
	}

	encoding, err := tiktoken.EncodingForModel(h.DeploymentID)
	if err != nil {
		encoding, err = tiktoken.EncodingForModel(fallbackEncodingModel)
		if err != nil {
			return 0, fmt.Errorf("failed to load token encoding: %w", err)
		}
	}
	return len(encoding.Encode(text, nil, nil)), nil
}
