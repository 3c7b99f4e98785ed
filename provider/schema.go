package provider

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// reflectSchema derives an inline JSON schema from a caller-supplied struct
// for structured chat responses. Azure's json_schema response format rejects
// $ref indirection, so definitions are expanded in place.
func reflectSchema(v any) (json.RawMessage, error) {
	reflector := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}
	schema := reflector.Reflect(v)
	return json.Marshal(schema)
}
