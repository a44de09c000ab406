package ports

import (
	"context"

	"frenetic/internal/types"
)

// SchemaPort answers which properties a namespace declares.
//
// The first call fetches the API root document; later calls are served
// from memory.  A failed fetch is not cached, so the next call retries.
type SchemaPort interface {
	// PropertyNames returns the declared property names of namespace in
	// declaration order.  It fails with a schema-unavailable error when
	// the document cannot be fetched and with a missing-definition error
	// when the namespace has no "properties" entry.
	PropertyNames(ctx context.Context, namespace string) ([]string, error)

	// Document returns the whole cached schema document.
	Document(ctx context.Context) (types.SchemaDocument, error)
}
