package ports

import "frenetic/internal/types"

// ConfigSourcePort merges configuration layers into a Config.  Explicit
// overrides take precedence over every other layer.
type ConfigSourcePort interface {
	Load(overrides map[string]any) (types.Config, error)
}
