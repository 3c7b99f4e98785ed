package provider

// ModelKind tags a model handle with the endpoint family it addresses.
type ModelKind int

const (
	KindChat ModelKind = iota
	KindCompletion
	KindEmbedding
	KindImage
)

func (k ModelKind) String() string {
	switch k {
	case KindChat:
		return "chat"
	case KindCompletion:
		return "completion"
	case KindEmbedding:
		return "embedding"
	case KindImage:
		return "image"
	default:
		return "unknown"
	}
}

// pathSuffix is the endpoint path appended after the deployment segment.
func (k ModelKind) pathSuffix() string {
	switch k {
	case KindChat:
		return "/chat/completions"
	case KindCompletion:
		return "/completions"
	case KindEmbedding:
		return "/embeddings"
	case KindImage:
		return "/images/generations"
	default:
		return ""
	}
}

// ModelHandle is a fully-addressed, immutable reference to a deployed model.
// It performs no I/O itself; the external generation layer combines it with a
// request body and an executor to issue the actual call. Handles are safe to
// share across goroutines.
type ModelHandle struct {
	DeploymentID string
	EndpointURL  string
	Headers      map[string]string
	Kind         ModelKind
	Options      ModelOptions
}
