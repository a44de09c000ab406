package types

import (
	"fmt"
	"sort"
)

// Reserved HAL keys in a raw resource representation.
const (
	EmbeddedKey = "_embedded"
	LinksKey    = "_links"
)

// Params is the canonical raw input mapping handed to a resource
// constructor.  Keys are always strings; NormalizeParams folds any other
// key type into its string form once, at ingestion.
type Params map[string]any

type absentValue struct{}

func (absentValue) String() string { return "nil" }

// Absent marks a declared property that the raw input did not carry.  It is
// distinct from an explicit JSON null.
var Absent any = absentValue{}

// IsAbsent reports whether v is the Absent marker.
func IsAbsent(v any) bool {
	_, ok := v.(absentValue)
	return ok
}

// NormalizeParams converts an arbitrary decoded mapping into Params.  A nil
// input yields an empty mapping.  Values are left untouched; nested
// mappings are normalized when they are themselves materialized.
func NormalizeParams(raw any) Params {
	params, ok := AsParams(raw)
	if !ok {
		return Params{}
	}
	return params
}

// AsParams converts map-shaped values into Params.  It reports false for
// anything that is not a mapping.
func AsParams(raw any) (Params, bool) {
	switch typed := raw.(type) {
	case Params:
		return typed, true
	case map[string]any:
		return Params(typed), true
	case map[any]any:
		out := make(Params, len(typed))
		for key, value := range typed {
			out[fmt.Sprint(key)] = value
		}
		return out, true
	case map[string]string:
		out := make(Params, len(typed))
		for key, value := range typed {
			out[key] = value
		}
		return out, true
	}
	return nil, false
}

// Lookup returns the value stored under key.
func (p Params) Lookup(key string) (any, bool) {
	value, ok := p[key]
	return value, ok
}

// Keys returns the keys of p, sorted.
func (p Params) Keys() []string {
	keys := make([]string, 0, len(p))
	for key := range p {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Merge returns a new mapping holding p overlaid with other.
func (p Params) Merge(other Params) Params {
	out := make(Params, len(p)+len(other))
	for key, value := range p {
		out[key] = value
	}
	for key, value := range other {
		out[key] = value
	}
	return out
}

// Clone deep-copies nested mappings and lists so callers can mutate the
// result without touching p.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for key, value := range p {
		out[key] = cloneValue(value)
	}
	return out
}

func cloneValue(value any) any {
	if nested, ok := AsParams(value); ok {
		return nested.Clone()
	}
	if list, ok := value.([]any); ok {
		copied := make([]any, len(list))
		for i, item := range list {
			copied[i] = cloneValue(item)
		}
		return copied
	}
	return value
}
