package core

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"frenetic/internal/ports"
	"frenetic/internal/shared"
	"frenetic/internal/types"
)

// SchemaRegistry implements SchemaPort on top of the API root document.
// The document is fetched at most once per registry; concurrent first
// lookups share a single request.  Failed fetches are not remembered.
type SchemaRegistry struct {
	http     ports.HTTPClientPort
	rootPath string
	metrics  ports.MetricsPort

	group singleflight.Group

	mu     sync.RWMutex
	doc    types.SchemaDocument
	loaded bool
}

func NewSchemaRegistry(http ports.HTTPClientPort, rootPath string, metrics ports.MetricsPort) *SchemaRegistry {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	return &SchemaRegistry{
		http:     http,
		rootPath: rootPath,
		metrics:  metrics,
	}
}

// PropertyNames returns the declared property names of namespace.
func (r *SchemaRegistry) PropertyNames(ctx context.Context, namespace string) ([]string, error) {
	doc, err := r.Document(ctx)
	if err != nil {
		return nil, err
	}
	descriptor, ok := doc.Descriptor(namespace)
	if !ok {
		return nil, types.MissingSchemaDefinitionError(namespace)
	}
	return descriptor.Names(), nil
}

// Document returns the schema document, fetching it on first use.
func (r *SchemaRegistry) Document(ctx context.Context) (types.SchemaDocument, error) {
	if doc, ok := r.cached(); ok {
		return doc, nil
	}
	// The shared fetch ignores cancellation of whichever caller started it.
	fetchCtx := context.WithoutCancel(ctx)
	results := r.group.DoChan(r.rootPath, func() (any, error) {
		if doc, ok := r.cached(); ok {
			return doc, nil
		}
		doc, err := r.fetch(fetchCtx)
		if err != nil {
			return nil, err
		}
		r.mu.Lock()
		r.doc = doc
		r.loaded = true
		r.mu.Unlock()
		return doc, nil
	})
	select {
	case <-ctx.Done():
		return nil, types.SchemaUnavailableError(r.rootPath, ctx.Err())
	case res := <-results:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(types.SchemaDocument), nil
	}
}

// Loaded reports whether the document has been fetched successfully.
func (r *SchemaRegistry) Loaded() bool {
	_, ok := r.cached()
	return ok
}

func (r *SchemaRegistry) cached() (types.SchemaDocument, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.doc, r.loaded
}

func (r *SchemaRegistry) fetch(ctx context.Context) (types.SchemaDocument, error) {
	resp, err := r.http.Get(ctx, r.rootPath)
	if err != nil {
		r.metrics.SchemaFetched(false)
		return nil, types.SchemaUnavailableError(r.rootPath, err)
	}
	if !resp.Success() {
		r.metrics.SchemaFetched(false)
		log.Debug().
			Str("path", r.rootPath).
			Int("status", resp.Status).
			Msg("schema fetch failed")
		return nil, types.SchemaUnavailableError(r.rootPath, shared.HTTPStatusError(resp.Status, r.rootPath))
	}
	r.metrics.SchemaFetched(true)
	doc := types.SchemaDocument(resp.Body)
	if doc == nil {
		doc = types.SchemaDocument{}
	}
	log.Debug().
		Str("path", r.rootPath).
		Int("namespaces", len(doc.Namespaces())).
		Msg("schema loaded")
	return doc, nil
}

var _ ports.SchemaPort = (*SchemaRegistry)(nil)
