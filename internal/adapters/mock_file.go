package adapters

import (
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"frenetic/internal/ports"
	"frenetic/internal/types"
)

// MockFileAdapter implements MockSourcePort using layered YAML fixture
// files.  Each call to LoadMocks merges new namespaces into the table;
// later loads replace earlier entries per namespace.
type MockFileAdapter struct {
	// merged holds the flattened namespace table after all layers.
	merged map[string]types.Params

	// layers tracks load order for debugging / provenance.
	layers []string
}

func NewMockFileAdapter() *MockFileAdapter {
	return &MockFileAdapter{
		merged: make(map[string]types.Params),
	}
}

// LoadMocks reads a fixture file and merges its namespaces.
func (a *MockFileAdapter) LoadMocks(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read mock file: " + path).
			WithCause(err)
	}

	var file types.MockFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse mock file: " + path).
			WithCause(err)
	}

	if file.SchemaVersion == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("mock file missing schema_version: " + path)
	}

	for namespace, defaults := range file.Mocks {
		normalized := strings.TrimSpace(namespace)
		if normalized == "" {
			continue
		}
		if defaults == nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("mock namespace '" + normalized + "' has no attributes in " + path)
		}
		if _, exists := a.merged[normalized]; exists {
			log.Debug().
				Str("namespace", normalized).
				Str("layer", path).
				Msg("mock namespace overridden by later layer")
		}
		a.merged[normalized] = normalizeYAML(defaults).(types.Params)
	}

	a.layers = append(a.layers, path)
	log.Debug().
		Str("path", path).
		Int("namespaces", len(file.Mocks)).
		Int("total", len(a.merged)).
		Msg("mock layer loaded")
	return nil
}

// Defaults returns a copy of the defaults registered for namespace.
func (a *MockFileAdapter) Defaults(namespace string) (types.Params, bool) {
	defaults, ok := a.merged[strings.TrimSpace(namespace)]
	if !ok {
		return nil, false
	}
	return defaults.Clone(), true
}

// HasMock returns true if any loaded layer defines namespace.
func (a *MockFileAdapter) HasMock(namespace string) bool {
	_, ok := a.merged[strings.TrimSpace(namespace)]
	return ok
}

// Namespaces lists the namespaces of all layers.
func (a *MockFileAdapter) Namespaces() []string {
	out := make(types.Params, len(a.merged))
	for namespace := range a.merged {
		out[namespace] = true
	}
	return out.Keys()
}

// normalizeYAML folds the map[string]any / map[any]any / int mix that
// yaml.v3 produces into the shapes encoding/json would produce for the
// same document, so fixtures and live payloads bind identically.
func normalizeYAML(value any) any {
	if nested, ok := types.AsParams(value); ok {
		out := make(types.Params, len(nested))
		for key, item := range nested {
			out[key] = normalizeYAML(item)
		}
		return out
	}
	switch typed := value.(type) {
	case []any:
		items := make([]any, len(typed))
		for i, item := range typed {
			items[i] = normalizeYAML(item)
		}
		return items
	case int:
		return float64(typed)
	case int64:
		return float64(typed)
	case uint64:
		return float64(typed)
	}
	return value
}

var _ ports.MockSourcePort = (*MockFileAdapter)(nil)
