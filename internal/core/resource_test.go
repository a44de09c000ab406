package core

import (
	"sync"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frenetic/internal/types"
)

func TestNewWidgetExample(t *testing.T) {
	client, stub := newShopClient(t)
	registry := NewRegistry()
	widget := registry.MustRegister(ResourceTypeConfig{Name: "shop.Widget", API: client})

	res, err := New(t.Context(), widget, map[string]any{"name": "bolt", "extra": "ignored"})
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "size"}, res.Names())
	name, ok := res.GetString("name")
	assert.True(t, ok)
	assert.Equal(t, "bolt", name)
	assert.True(t, res.Present("name"))
	assert.False(t, res.Present("size"))
	_, ok = res.Get("extra")
	assert.False(t, ok)
	assert.False(t, res.IsMock())
	assert.Equal(t, "widget", res.Namespace())
	assert.Equal(t, 1, stub.getCount(testRoot))
}

func TestNewMissingSchemaDefinition(t *testing.T) {
	stub := newStubHTTP()
	stub.respond(testRoot, 200, types.Params{"part": map[string]any{"properties": map[string]any{}}})
	client, err := NewClient(types.Config{URL: "http://example.org/api"}, stub, nil)
	require.NoError(t, err)
	registry := NewRegistry()
	widget := registry.MustRegister(ResourceTypeConfig{Name: "Widget", API: client})

	res, err := New(t.Context(), widget, types.Params{"name": "bolt"})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, types.IsMissingSchemaDefinition(err))
	assert.Contains(t, err.Error(), "widget")
}

func TestNewSchemaUnavailable(t *testing.T) {
	stub := newStubHTTP()
	stub.respond(testRoot, 500, nil)
	client, err := NewClient(types.Config{URL: "http://example.org/api"}, stub, nil)
	require.NoError(t, err)
	registry := NewRegistry()
	widget := registry.MustRegister(ResourceTypeConfig{Name: "Widget", API: client})

	_, err = New(t.Context(), widget, nil)
	require.Error(t, err)
	assert.True(t, types.IsSchemaUnavailable(err))
	assert.Equal(t, errbuilder.CodeUnavailable, errbuilder.CodeOf(err))
}

func TestNewIsIdempotent(t *testing.T) {
	client, _ := newShopClient(t)
	registry := NewRegistry()
	widget := registry.MustRegister(ResourceTypeConfig{Name: "shop.Widget", API: client})
	registry.MustRegister(ResourceTypeConfig{Name: "shop.Part", API: client})
	raw := types.Params{
		"size": 4.0,
		"name": "bolt",
		"_embedded": map[string]any{
			"part":  map[string]any{"sku": "P"},
			"notes": map[string]any{"text": "hi"},
		},
	}

	first, err := New(t.Context(), widget, raw)
	require.NoError(t, err)
	second, err := New(t.Context(), widget, raw)
	require.NoError(t, err)

	assert.Equal(t, first.Names(), second.Names())
	assert.Equal(t, first.Inspect(), second.Inspect())
	assert.NotSame(t, first.Structure(), second.Structure())
}

func TestNewCopiesNestedInput(t *testing.T) {
	client, _ := newShopClient(t)
	registry := NewRegistry()
	widget := registry.MustRegister(ResourceTypeConfig{Name: "shop.Widget", API: client})
	dims := map[string]any{"w": 1.0}
	sizes := []any{1.0, 2.0}

	res, err := New(t.Context(), widget, types.Params{"name": dims, "size": sizes})
	require.NoError(t, err)
	dims["w"] = 9.0
	sizes[0] = 9.0

	name, _ := res.Get("name")
	size, _ := res.Get("size")
	assert.Equal(t, types.Params{"w": 1.0}, name)
	assert.Equal(t, []any{1.0, 2.0}, size)
}

func TestAsMockCopiesOverrides(t *testing.T) {
	registry := NewRegistry()
	widget := registry.MustRegister(ResourceTypeConfig{
		Name: "shop.Widget",
		Mock: StaticMock(types.Params{"name": "default", "size": 1.0}),
	})
	tags := []any{"a"}

	res, err := AsMock(t.Context(), widget, types.Params{"size": tags})
	require.NoError(t, err)
	tags[0] = "mutated"

	size, _ := res.Get("size")
	assert.Equal(t, []any{"a"}, size)
}

func TestNewExplicitNamespace(t *testing.T) {
	client, _ := newShopClient(t)
	registry := NewRegistry()
	thing := registry.MustRegister(ResourceTypeConfig{Name: "shop.Thing", Namespace: "part", API: client})

	res, err := New(t.Context(), thing, types.Params{"sku": "S"})
	require.NoError(t, err)
	assert.Equal(t, "part", thing.Namespace())
	assert.Equal(t, []string{"qty", "sku"}, res.Names())
}

func TestTestModeFromConfig(t *testing.T) {
	stub := newStubHTTP()
	client, err := NewClient(types.Config{URL: "http://example.org/api", TestMode: true}, stub, nil)
	require.NoError(t, err)
	registry := NewRegistry()
	widget := registry.MustRegister(ResourceTypeConfig{
		Name: "Widget",
		API:  client,
		Mock: StaticMock(types.Params{"name": "default", "size": 1.0}),
	})

	assert.True(t, widget.TestMode())
	res, err := New(t.Context(), widget, types.Params{"name": "bolt"})
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "size"}, res.Names())
	size, _ := res.Get("size")
	assert.True(t, types.IsAbsent(size), "New binds input only, defaults are not merged")
	assert.Equal(t, 0, stub.totalGets())
}

func TestTestModeWithoutMockFails(t *testing.T) {
	registry := NewRegistry()
	widget := registry.MustRegister(ResourceTypeConfig{Name: "shop.Widget"})

	_, err := New(t.Context(), widget, types.Params{})
	require.Error(t, err)
	assert.True(t, types.IsUndefinedResourceMock(err))
	assert.Contains(t, err.Error(), "namespace=widget")
	assert.Contains(t, err.Error(), "type=shop.Widget")
}

func TestAttributesViewInvalidatedOnRebuild(t *testing.T) {
	client, _ := newShopClient(t)
	registry := NewRegistry()
	widget := registry.MustRegister(ResourceTypeConfig{Name: "shop.Widget", API: client})

	res, err := New(t.Context(), widget, types.Params{"name": "bolt", "size": 1.0})
	require.NoError(t, err)

	view := res.Attributes()
	assert.Equal(t, "bolt", view["name"])
	again := res.Attributes()
	again["probe"] = true
	assert.Contains(t, res.Attributes(), "probe", "view is cached per structure")

	require.NoError(t, res.Rebuild(t.Context(), types.Params{"name": "nut", "size": 2.0}))
	rebuilt := res.Attributes()
	assert.Equal(t, "nut", rebuilt["name"])
	assert.Equal(t, 2.0, rebuilt["size"])
	assert.NotContains(t, rebuilt, "probe")
}

func TestAttributesConcurrentReads(t *testing.T) {
	client, _ := newShopClient(t)
	registry := NewRegistry()
	widget := registry.MustRegister(ResourceTypeConfig{Name: "shop.Widget", API: client})
	res, err := New(t.Context(), widget, types.Params{"name": "bolt"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "bolt", res.Attributes()["name"])
			_ = res.Inspect()
		}()
	}
	wg.Wait()
}

func TestInspect(t *testing.T) {
	client, _ := newShopClient(t)
	registry := NewRegistry()
	widget := registry.MustRegister(ResourceTypeConfig{Name: "shop.Widget", API: client})

	res, err := New(t.Context(), widget, types.Params{
		"name": "bolt",
		"_links": map[string]any{
			"self":  map[string]any{"href": "/api/widgets/1"},
			"parts": map[string]any{"href": "/api/widgets/1/parts"},
		},
		"_embedded": map[string]any{"tag": map[string]any{"label": "x"}},
	})
	require.NoError(t, err)
	assert.Equal(t,
		`#<shop.Widget name="bolt" size=nil tag=#<struct label="x"> namespace="widget" links=[parts self]>`,
		res.Inspect())
	assert.Equal(t, res.Inspect(), res.String())
}

func TestParams(t *testing.T) {
	client, _ := newShopClient(t)
	registry := NewRegistry()
	widget := registry.MustRegister(ResourceTypeConfig{Name: "shop.Widget", API: client})
	registry.MustRegister(ResourceTypeConfig{Name: "shop.Part", API: client})

	res, err := New(t.Context(), widget, types.Params{
		"name":      "bolt",
		"_embedded": map[string]any{"part": map[string]any{"sku": "P"}},
	})
	require.NoError(t, err)
	assert.Equal(t, types.Params{
		"name": "bolt",
		"part": types.Params{"sku": "P"},
	}, res.Params())
}

func TestLinks(t *testing.T) {
	client, _ := newShopClient(t)
	registry := NewRegistry()
	widget := registry.MustRegister(ResourceTypeConfig{Name: "shop.Widget", API: client})

	res, err := New(t.Context(), widget, types.Params{
		"_links": map[string]any{
			"self": map[string]any{"href": "/api/widgets/1"},
			"part": map[string]any{"href": "/api/parts/{sku}", "templated": true},
		},
	})
	require.NoError(t, err)

	self, ok := res.SelfHref()
	assert.True(t, ok)
	assert.Equal(t, "/api/widgets/1", self)

	href, ok := res.Href("part", map[string]string{"sku": "B-1"})
	assert.True(t, ok)
	assert.Equal(t, "/api/parts/B-1", href)

	_, ok = res.Href("missing", nil)
	assert.False(t, ok)
}

func TestRegistryRejectsDuplicatesAndEmptyNames(t *testing.T) {
	registry := NewRegistry()
	_, err := registry.Register(ResourceTypeConfig{Name: "shop.Widget"})
	require.NoError(t, err)

	_, err = registry.Register(ResourceTypeConfig{Name: "shop.Widget"})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeAlreadyExists, errbuilder.CodeOf(err))

	_, err = registry.Register(ResourceTypeConfig{Name: "  "})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))

	_, ok := registry.Lookup("shop.Widget")
	assert.True(t, ok)
	_, ok = registry.Lookup("shop.Gizmo")
	assert.False(t, ok)
	assert.Equal(t, []string{"shop.Widget"}, registry.Names())
}
