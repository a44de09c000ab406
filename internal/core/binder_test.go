package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"frenetic/internal/types"
)

func TestBindProjectsOntoDeclaredNames(t *testing.T) {
	bound := Bind([]string{"name", "size"}, types.Params{
		"name":  "bolt",
		"extra": "ignored",
	})

	assert.Equal(t, []string{"name", "size"}, bound.Names())
	name, ok := bound.Get("name")
	assert.True(t, ok)
	assert.Equal(t, "bolt", name)
	size, ok := bound.Get("size")
	assert.True(t, ok)
	assert.True(t, types.IsAbsent(size))
	_, ok = bound.Get("extra")
	assert.False(t, ok)
}

func TestBindKeySetEqualsDeclaredSet(t *testing.T) {
	declared := []string{"a", "b", "c"}
	inputs := []types.Params{
		{},
		{"a": 1},
		{"a": 1, "b": 2, "c": 3},
		{"a": 1, "b": 2, "c": 3, "d": 4, "_links": map[string]any{}},
	}
	for _, input := range inputs {
		bound := Bind(declared, input)
		got := bound.Map()
		keys := make([]string, 0, len(got))
		for key := range got {
			keys = append(keys, key)
		}
		if diff := cmp.Diff(declared, keys, sortStrings); diff != "" {
			t.Fatalf("unexpected key set for %v (-want +got):\n%s", input, diff)
		}
	}
}

func TestBindKeepsExplicitNull(t *testing.T) {
	bound := Bind([]string{"size"}, types.Params{"size": nil})
	size, ok := bound.Get("size")
	assert.True(t, ok)
	assert.Nil(t, size)
	assert.False(t, types.IsAbsent(size))
}

func TestBindNormalizedKeys(t *testing.T) {
	raw := types.NormalizeParams(map[any]any{"name": "bolt", 7: "seven"})
	bound := Bind([]string{"name", "7"}, raw)
	name, _ := bound.Get("name")
	seven, _ := bound.Get("7")
	assert.Equal(t, "bolt", name)
	assert.Equal(t, "seven", seven)
}

func TestBoundAttributesSetAppendsNewNames(t *testing.T) {
	bound := Bind([]string{"name"}, types.Params{"name": "bolt"})
	bound.Set("parts", "x")
	bound.Set("name", "nut")
	assert.Equal(t, []string{"name", "parts"}, bound.Names())
	name, _ := bound.Get("name")
	assert.Equal(t, "nut", name)
}
