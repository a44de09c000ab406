package core

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"frenetic/internal/ports"
)

// ResourceTypeConfig declares a resource type.  Name is the qualified type
// name ("shop.Order"); its qualifier is the prefix used to look up
// embedded relations.  Namespace defaults to DeriveNamespace(Name).  A nil
// API puts the type in test mode.
type ResourceTypeConfig struct {
	Name      string
	Namespace string
	API       *Client
	Mock      *MockDefinition
}

// ResourceType is the per-type descriptor shared by every instance.  It
// is created once by Registry.Register and never mutated afterwards.
type ResourceType struct {
	name     string
	declared string
	api      *Client
	mock     *MockDefinition
	registry *Registry

	nsOnce    sync.Once
	namespace string
}

func (t *ResourceType) Name() string { return t.name }

// Namespace returns the declared namespace or the derived one, computed
// once.
func (t *ResourceType) Namespace() string {
	t.nsOnce.Do(func() {
		if t.declared != "" {
			t.namespace = t.declared
			return
		}
		t.namespace = DeriveNamespace(t.name)
	})
	return t.namespace
}

func (t *ResourceType) API() *Client { return t.api }

// TestMode is true when the type has no API client or the client's
// configuration sets test_mode.
func (t *ResourceType) TestMode() bool {
	return t.api.TestMode()
}

// HasMock reports whether the type can be built with AsMock.
func (t *ResourceType) HasMock() bool {
	return t.mock != nil && t.mock.Defaults != nil
}

// Properties returns the authoritative property names of the type: the
// mock defaults in test mode, the live schema otherwise.
func (t *ResourceType) Properties(ctx context.Context) ([]string, error) {
	if t.TestMode() {
		defaults, err := DefaultAttributes(t)
		if err != nil {
			return nil, err
		}
		return attributeKeys(defaults), nil
	}
	return t.api.Schema.PropertyNames(ctx, t.Namespace())
}

// Registry maps qualified type names to descriptors.  It replaces lookup
// of types by name at runtime: a miss is an ordinary result.
type Registry struct {
	mu      sync.RWMutex
	types   map[string]*ResourceType
	metrics ports.MetricsPort
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithMetrics routes materialization events to metrics.
func WithMetrics(metrics ports.MetricsPort) RegistryOption {
	return func(r *Registry) {
		if metrics != nil {
			r.metrics = metrics
		}
	}
}

func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		types:   make(map[string]*ResourceType),
		metrics: ports.NopMetrics{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a resource type.  Registering the same name twice fails.
func (r *Registry) Register(cfg ResourceTypeConfig) (*ResourceType, error) {
	name := strings.TrimSpace(cfg.Name)
	if name == "" || strings.HasSuffix(name, typeSeparator) {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("resource type name is required")
	}
	rt := &ResourceType{
		name:     name,
		declared: strings.TrimSpace(cfg.Namespace),
		api:      cfg.API,
		mock:     cfg.Mock,
		registry: r,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.types[name]; exists {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeAlreadyExists).
			WithMsg("resource type already registered: " + name)
	}
	r.types[name] = rt
	log.Debug().
		Str("type", name).
		Str("namespace", rt.Namespace()).
		Bool("mock", rt.HasMock()).
		Msg("resource type registered")
	return rt, nil
}

// MustRegister is Register for package-level declarations; it panics on
// error.
func (r *Registry) MustRegister(cfg ResourceTypeConfig) *ResourceType {
	rt, err := r.Register(cfg)
	if err != nil {
		panic(err)
	}
	return rt
}

func (r *Registry) Lookup(name string) (*ResourceType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rt, ok := r.types[name]
	return rt, ok
}

// Names lists registered type names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
