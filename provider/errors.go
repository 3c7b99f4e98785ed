package provider

import "fmt"

// ValidationError reports the first invalid per-model option encountered by a
// factory call. The caller can correct the named field and call the factory
// again.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid option %q: %s", e.Field, e.Reason)
}
