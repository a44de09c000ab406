package types

// MockFile is the top-level structure of a mock fixture file.  It maps
// namespaces to the default attributes used to build resources of that
// namespace in test mode.
//
// Multiple fixture files can be layered; later layers replace earlier ones
// per namespace.
type MockFile struct {
	// SchemaVersion identifies the file format version.
	SchemaVersion string `yaml:"schema_version"`

	// Mocks maps a namespace to its default attributes.
	Mocks map[string]map[string]any `yaml:"mocks"`
}
