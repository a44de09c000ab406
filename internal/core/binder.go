package core

import "frenetic/internal/types"

// BoundAttributes is the projection of a raw input onto a declared
// property list.  Every declared name is present; names missing from the
// input hold types.Absent.
type BoundAttributes struct {
	names  []string
	values map[string]any
}

// Bind copies the value of each declared name from raw.  Keys of raw that
// are not declared are dropped.
func Bind(names []string, raw types.Params) BoundAttributes {
	bound := BoundAttributes{
		names:  make([]string, 0, len(names)),
		values: make(map[string]any, len(names)),
	}
	for _, name := range names {
		if _, dup := bound.values[name]; dup {
			continue
		}
		value, ok := raw.Lookup(name)
		if !ok {
			value = types.Absent
		}
		bound.names = append(bound.names, name)
		bound.values[name] = value
	}
	return bound
}

// Names returns the bound names in order.
func (b BoundAttributes) Names() []string {
	return append([]string(nil), b.names...)
}

func (b BoundAttributes) Get(name string) (any, bool) {
	value, ok := b.values[name]
	return value, ok
}

// Set replaces the value of name, appending name if it was not bound.
func (b *BoundAttributes) Set(name string, value any) {
	if b.values == nil {
		b.values = make(map[string]any)
	}
	if _, ok := b.values[name]; !ok {
		b.names = append(b.names, name)
	}
	b.values[name] = value
}

// Map returns the bound values keyed by name.
func (b BoundAttributes) Map() map[string]any {
	out := make(map[string]any, len(b.values))
	for name, value := range b.values {
		out[name] = value
	}
	return out
}

// Structure freezes the bound attributes.
func (b BoundAttributes) Structure() *Structure {
	return BuildStructure(b.names, b.values)
}

// attributeKeys lists the keys of p that can be properties, i.e. all but
// the reserved HAL sections.
func attributeKeys(p types.Params) []string {
	keys := p.Keys()
	out := keys[:0]
	for _, key := range keys {
		if key == types.EmbeddedKey || key == types.LinksKey {
			continue
		}
		out = append(out, key)
	}
	return out
}
