package api

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/socialmedia-api/internal/platform/logger"
	"gopkg.in/yaml.v3"
)

// Paths the API description is served on.
const (
	APIDocsPath     = "/v3/api-docs"
	APIDocsYAMLPath = "/v3/api-docs.yaml"
)

// openAPIDocument is the OpenAPI 3 description of every route in RegisterRoutes.
//
//go:embed openapi.yaml
var openAPIDocument []byte

// openAPIJSON converts the embedded YAML document once.
var openAPIJSON = sync.OnceValues(func() ([]byte, error) {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(openAPIDocument, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse openapi document: %w", err)
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode openapi document: %w", err)
	}
	return out, nil
})

// RegisterDocsRoutes mounts the API description on r.
func RegisterDocsRoutes(r chi.Router) {
	r.Get(APIDocsPath, ServeAPIDocs)
	r.Get(APIDocsYAMLPath, ServeAPIDocsYAML)
}

// ServeAPIDocs writes the API description as JSON.
func ServeAPIDocs(w http.ResponseWriter, r *http.Request) {
	doc, err := openAPIJSON()
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load API documentation")
		return
	}
	writeAPIDocs(w, r, "application/json", doc)
}

// ServeAPIDocsYAML writes the embedded API description unchanged.
func ServeAPIDocsYAML(w http.ResponseWriter, r *http.Request) {
	writeAPIDocs(w, r, "application/yaml", openAPIDocument)
}

func writeAPIDocs(w http.ResponseWriter, r *http.Request, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	if _, err := w.Write(body); err != nil {
		logger.FromContext(r.Context()).Error("failed to write API documentation", slog.String("error", err.Error()))
	}
}
