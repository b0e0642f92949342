package rest

import (
	_ "embed"
	"net/http"
)

//go:embed openapi.yaml
var openAPIDoc []byte

// OpenAPIDocument returns the embedded API description.
func OpenAPIDocument() []byte { return openAPIDoc }

// ServeOpenAPI handles GET /openapi.yaml.
func ServeOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	w.Write(openAPIDoc) //nolint:errcheck
}
