package core

import (
	"iter"
	"strings"

	"frenetic/internal/types"
)

// Record is the read surface shared by typed resources and generic
// structures.
type Record interface {
	Get(name string) (any, bool)
	Names() []string
	Attributes() map[string]any
}

// Structure is a fixed-shape, ordered, immutable set of named values.  It
// backs a Resource and is also what unknown embedded payloads degrade to.
type Structure struct {
	names  []string
	values []any
	index  map[string]int
}

// BuildStructure lays out values in the order of names.  Names without a
// value hold types.Absent.
func BuildStructure(names []string, values map[string]any) *Structure {
	s := &Structure{
		names:  make([]string, 0, len(names)),
		values: make([]any, 0, len(names)),
		index:  make(map[string]int, len(names)),
	}
	for _, name := range names {
		if _, dup := s.index[name]; dup {
			continue
		}
		value, ok := values[name]
		if !ok {
			value = types.Absent
		}
		s.index[name] = len(s.names)
		s.names = append(s.names, name)
		s.values = append(s.values, value)
	}
	return s
}

// NewGeneric builds an untyped structure holding every key of attrs,
// sorted.  Nested values are kept as decoded.
func NewGeneric(attrs types.Params) *Structure {
	return BuildStructure(attrs.Keys(), attrs)
}

func (s *Structure) Get(name string) (any, bool) {
	idx, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.values[idx], true
}

func (s *Structure) Names() []string {
	return append([]string(nil), s.names...)
}

func (s *Structure) Values() []any {
	return append([]any(nil), s.values...)
}

func (s *Structure) Len() int {
	return len(s.names)
}

// All yields name/value pairs in order.
func (s *Structure) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for i, name := range s.names {
			if !yield(name, s.values[i]) {
				return
			}
		}
	}
}

// Attributes returns a fresh name -> value mapping.
func (s *Structure) Attributes() map[string]any {
	out := make(map[string]any, len(s.names))
	for i, name := range s.names {
		out[name] = s.values[i]
	}
	return out
}

func (s *Structure) Inspect() string {
	var b strings.Builder
	b.WriteString("#<struct")
	for name, value := range s.All() {
		b.WriteString(" ")
		b.WriteString(name)
		b.WriteString("=")
		b.WriteString(formatValue(value))
	}
	b.WriteString(">")
	return b.String()
}

func (s *Structure) String() string {
	return s.Inspect()
}

var _ Record = (*Structure)(nil)
