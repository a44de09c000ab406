package core

import (
	"context"
	"sync"

	assert "github.com/ZanzyTHEbar/assert-lib"

	"frenetic/internal/types"
)

// Resource is the public face of a materialized HAL resource.  It owns
// exactly one Structure and reads through to it; the structure may be
// replaced wholesale (after a save or reload), never edited in place.
type Resource struct {
	kind *ResourceType
	mock bool

	mu         sync.RWMutex
	structure  *Structure
	links      types.Links
	attributes map[string]any
}

// New materializes raw as a resource of type rt.  In test mode the
// property set comes from the type's mock defaults, otherwise from the
// live schema.
func New(ctx context.Context, rt *ResourceType, raw any) (*Resource, error) {
	names, err := rt.Properties(ctx)
	if err != nil {
		return nil, err
	}
	return materialize(ctx, rt, names, types.NormalizeParams(raw).Clone(), false)
}

func materialize(ctx context.Context, rt *ResourceType, names []string, params types.Params, mock bool) (*Resource, error) {
	assert.NotEmpty(ctx, rt.Namespace(), "resource namespace must be set")

	bound := Bind(names, params)
	embedded, err := ResolveEmbedded(ctx, params, rt)
	if err != nil {
		return nil, err
	}
	for _, relation := range types.Params(embedded).Keys() {
		bound.Set(relation, embedded[relation])
	}

	rt.registry.metrics.ResourceBuilt(rt.Namespace(), mock)
	return &Resource{
		kind:      rt,
		mock:      mock,
		structure: bound.Structure(),
		links:     types.ParseLinks(params[types.LinksKey]),
	}, nil
}

func (r *Resource) Type() *ResourceType { return r.kind }

func (r *Resource) Namespace() string { return r.kind.Namespace() }

// IsMock reports whether the resource was built from mock defaults.
func (r *Resource) IsMock() bool { return r.mock }

// Structure returns the current backing structure.
func (r *Resource) Structure() *Structure {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.structure
}

func (r *Resource) Get(name string) (any, bool) {
	return r.Structure().Get(name)
}

func (r *Resource) Names() []string {
	return r.Structure().Names()
}

// Present reports whether name is declared and carries a value.
func (r *Resource) Present(name string) bool {
	value, ok := r.Get(name)
	return ok && value != nil && !types.IsAbsent(value)
}

// GetString returns the string value of name.
func (r *Resource) GetString(name string) (string, bool) {
	value, _ := r.Get(name)
	str, ok := value.(string)
	return str, ok
}

// GetFloat returns the numeric value of name.  JSON numbers decode as
// float64.
func (r *Resource) GetFloat(name string) (float64, bool) {
	value, _ := r.Get(name)
	switch typed := value.(type) {
	case float64:
		return typed, true
	case int:
		return float64(typed), true
	case int64:
		return float64(typed), true
	}
	return 0, false
}

func (r *Resource) GetBool(name string) (bool, bool) {
	value, _ := r.Get(name)
	b, ok := value.(bool)
	return b, ok
}

// Embedded returns the typed embedded resource stored under name.
func (r *Resource) Embedded(name string) (*Resource, bool) {
	value, _ := r.Get(name)
	res, ok := value.(*Resource)
	return res, ok
}

// Record returns the embedded resource or generic structure stored under
// name.
func (r *Resource) Record(name string) (Record, bool) {
	value, _ := r.Get(name)
	rec, ok := value.(Record)
	return rec, ok
}

// Attributes returns the name -> value view of the resource.  The view is
// computed once per structure and must not be modified.
func (r *Resource) Attributes() map[string]any {
	r.mu.RLock()
	cached := r.attributes
	structure := r.structure
	r.mu.RUnlock()
	if cached != nil {
		return cached
	}

	view := structure.Attributes()
	r.mu.Lock()
	if r.structure == structure && r.attributes == nil {
		r.attributes = view
	}
	r.mu.Unlock()
	return view
}

// Rebuild re-materializes the resource from raw and swaps the new
// structure in, dropping any cached attribute view.
func (r *Resource) Rebuild(ctx context.Context, raw any) error {
	var (
		fresh *Resource
		err   error
	)
	if r.mock {
		fresh, err = AsMock(ctx, r.kind, raw)
	} else {
		fresh, err = New(ctx, r.kind, raw)
	}
	if err != nil {
		return err
	}
	r.replaceStructure(fresh.structure, fresh.links)
	return nil
}

func (r *Resource) replaceStructure(structure *Structure, links types.Links) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attributes = nil
	r.structure = structure
	r.links = links
}

// Params returns the attributes that carry a value, ready to be sent back
// to the API.  Embedded resources are flattened to their own params.
func (r *Resource) Params() types.Params {
	out := types.Params{}
	for name, value := range r.Structure().All() {
		if types.IsAbsent(value) {
			continue
		}
		out[name] = paramValue(value)
	}
	return out
}

func paramValue(value any) any {
	switch typed := value.(type) {
	case *Resource:
		return typed.Params()
	case *Structure:
		return typed.Attributes()
	case []any:
		items := make([]any, len(typed))
		for i, item := range typed {
			items[i] = paramValue(item)
		}
		return items
	}
	return value
}

var _ Record = (*Resource)(nil)
