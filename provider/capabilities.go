package provider

import "strings"

// ModelVersion names the backing model of a deployment. Deployment ids are
// caller-chosen, so the version can only arrive as an explicit hint.
type ModelVersion string

const (
	ModelVersionDallE2 ModelVersion = "dall-e-2"
	ModelVersionDallE3 ModelVersion = "dall-e-3"
)

// imageSizes is the static capability table of valid generation sizes per
// image model version.
var imageSizes = map[ModelVersion]map[string]struct{}{
	ModelVersionDallE2: {
		"256x256":   {},
		"512x512":   {},
		"1024x1024": {},
	},
	ModelVersionDallE3: {
		"1024x1024": {},
		"1792x1024": {},
		"1024x1792": {},
	},
}

// SupportedImageSize reports whether size is valid for the given model
// version. Unknown versions pass everything: the table cannot be exhaustive,
// so rejection is deferred to the remote service.
func SupportedImageSize(version ModelVersion, size string) bool {
	sizes, ok := imageSizes[ModelVersion(strings.ToLower(string(version)))]
	if !ok {
		return true
	}
	_, ok = sizes[size]
	return ok
}
