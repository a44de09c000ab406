package ports

import (
	"context"

	"frenetic/internal/types"
)

// HTTPClientPort is the transport the mapper talks to.  Paths are resolved
// against the configured API base URL; bodies are JSON objects.
type HTTPClientPort interface {
	Get(ctx context.Context, path string) (types.Response, error)
	Put(ctx context.Context, path string, body types.Params) (types.Response, error)
	Post(ctx context.Context, path string, body types.Params) (types.Response, error)
	Delete(ctx context.Context, path string) (types.Response, error)
}
