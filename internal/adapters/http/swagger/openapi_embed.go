package swagger

import _ "embed"

// OpenAPI contains the embedded OpenAPI YAML document describing the
// dashboard HTTP surface.
//
//go:embed openapi.yaml
var OpenAPI []byte
