package ports

import "frenetic/internal/types"

// MockSourcePort serves default attribute sets for test mode, keyed by
// namespace.
//
// Sources may be layered: each LoadMocks call adds a layer and the last
// layer defining a namespace wins.
type MockSourcePort interface {
	// LoadMocks reads a mock fixture file and merges its namespaces.
	LoadMocks(path string) error

	// Defaults returns a fresh copy of the defaults for namespace.
	Defaults(namespace string) (types.Params, bool)

	// HasMock reports whether any layer defines namespace.
	HasMock(namespace string) bool
}
