package types

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeParams(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want Params
	}{
		{name: "nil", raw: nil, want: Params{}},
		{name: "not a mapping", raw: []any{1, 2}, want: Params{}},
		{name: "string keys", raw: map[string]any{"a": 1}, want: Params{"a": 1}},
		{name: "params", raw: Params{"a": "x"}, want: Params{"a": "x"}},
		{name: "any keys", raw: map[any]any{"a": 1, 2: "two"}, want: Params{"a": 1, "2": "two"}},
		{name: "string values", raw: map[string]string{"a": "x"}, want: Params{"a": "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, NormalizeParams(tt.raw)); diff != "" {
				t.Fatalf("unexpected params (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAbsentIsDistinctFromNil(t *testing.T) {
	assert.True(t, IsAbsent(Absent))
	assert.False(t, IsAbsent(nil))
	assert.NotNil(t, Absent)
	assert.Equal(t, "nil", Absent.(interface{ String() string }).String())
}

func TestParamsKeysMergeLookup(t *testing.T) {
	p := Params{"b": 2, "a": 1}
	assert.Equal(t, []string{"a", "b"}, p.Keys())

	merged := p.Merge(Params{"b": 3, "c": 4})
	assert.Equal(t, Params{"a": 1, "b": 3, "c": 4}, merged)
	assert.Equal(t, 2, p["b"], "merge must not modify the receiver")

	value, ok := merged.Lookup("c")
	require.True(t, ok)
	assert.Equal(t, 4, value)
	_, ok = merged.Lookup("z")
	assert.False(t, ok)
}

func TestParamsCloneIsDeep(t *testing.T) {
	original := Params{
		"nested": map[string]any{"x": 1},
		"list":   []any{map[string]any{"y": 2}},
	}
	clone := original.Clone()

	clone["nested"].(Params)["x"] = 99
	clone["list"].([]any)[0].(Params)["y"] = 99

	assert.Equal(t, 1, original["nested"].(map[string]any)["x"])
	assert.Equal(t, 2, original["list"].([]any)[0].(map[string]any)["y"])
}

func TestResponseSuccess(t *testing.T) {
	assert.True(t, Response{Status: 200}.Success())
	assert.True(t, Response{Status: 204}.Success())
	assert.False(t, Response{Status: 304}.Success())
	assert.False(t, Response{Status: 404}.Success())
	assert.False(t, Response{}.Success())
}
