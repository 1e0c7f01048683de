// Package identifiers renders identifier descriptors (cpe, purl, repology)
// into the URLs they point at. The validation engine only needs the
// discriminated result: a URL, or a reason the descriptor is invalid.
package identifiers

import (
	"fmt"
	"net/url"

	"github.com/endoflife-date/eolint/pkg/logger"
	"github.com/endoflife-date/eolint/pkg/schema"
)

var rendererLog = logger.New("identifiers:renderer")

// Renderer turns one identifier descriptor into a URL. Implementations
// return an error for malformed or unrecognized descriptors; they never
// panic across this boundary.
type Renderer interface {
	Render(descriptor schema.Value) (string, error)
}

// urlTemplates maps identifier types to the site rendering that identifier.
// The %s is the url-escaped identifier value.
var urlTemplates = map[string]string{
	"cpe":      "https://nvd.nist.gov/products/cpe/search/results?keyword=%s",
	"purl":     "https://deps.dev/%s",
	"repology": "https://repology.org/project/%s/versions",
}

// TemplateRenderer renders identifiers through the fixed URL template table.
type TemplateRenderer struct{}

// NewTemplateRenderer returns the default identifier renderer.
func NewTemplateRenderer() *TemplateRenderer {
	return &TemplateRenderer{}
}

// Render validates the descriptor shape (a single-entry map of identifier
// type to string value) and renders it through the template table.
func (r *TemplateRenderer) Render(descriptor schema.Value) (string, error) {
	if descriptor.Kind() != schema.KindMap {
		return "", fmt.Errorf("identifier must be a map of type to value, got %s", descriptor.Kind())
	}

	entries := descriptor.Map()
	if len(entries) != 1 {
		return "", fmt.Errorf("identifier must have exactly one type, got %d", len(entries))
	}

	for idType, idValue := range entries {
		template, ok := urlTemplates[idType]
		if !ok {
			return "", fmt.Errorf("unknown identifier type %q", idType)
		}
		if idValue.Kind() != schema.KindString || idValue.Str() == "" {
			return "", fmt.Errorf("identifier %s value must be a non-empty string, got %s", idType, idValue.Kind())
		}

		rendered := fmt.Sprintf(template, url.PathEscape(idValue.Str()))
		rendererLog.Printf("Rendered %s identifier: %s", idType, rendered)
		return rendered, nil
	}

	return "", fmt.Errorf("empty identifier descriptor")
}
