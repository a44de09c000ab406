package types

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLinks(t *testing.T) {
	raw := map[string]any{
		"self": map[string]any{"href": "/api/orders/1"},
		"items": []any{
			map[string]any{"href": "/api/items/1", "name": "first"},
			map[string]any{"href": "/api/items/2"},
			map[string]any{"name": "no href"},
		},
		"search": map[string]any{"href": "/api/orders{?q}", "templated": true},
		"broken": "not a link",
	}
	want := Links{
		"self": {{Href: "/api/orders/1"}},
		"items": {
			{Href: "/api/items/1", Name: "first"},
			{Href: "/api/items/2"},
		},
		"search": {{Href: "/api/orders{?q}", Templated: true}},
	}
	got := ParseLinks(raw)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected links (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"items", "search", "self"}, got.Relations())

	first, ok := got.First("items")
	require.True(t, ok)
	assert.Equal(t, "first", first.Name)
	_, ok = got.First("missing")
	assert.False(t, ok)

	assert.Empty(t, ParseLinks(nil))
	assert.Empty(t, ParseLinks("nope"))
}

func TestLinkExpand(t *testing.T) {
	tests := []struct {
		name   string
		href   string
		params map[string]string
		want   string
	}{
		{name: "no template", href: "/api/orders", want: "/api/orders"},
		{name: "single", href: "/api/orders/{id}", params: map[string]string{"id": "7"}, want: "/api/orders/7"},
		{name: "several", href: "/api/{shop}/orders/{id}", params: map[string]string{"shop": "s1", "id": "7"}, want: "/api/s1/orders/7"},
		{name: "missing", href: "/api/orders/{id}", want: "/api/orders/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Link{Href: tt.href}.Expand(tt.params))
		})
	}
}
