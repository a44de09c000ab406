package core

import (
	"fmt"
	"strconv"
	"strings"

	"frenetic/internal/types"
)

// Inspect renders the resource for diagnostics:
//
//	#<shop.Widget name="bolt" size=nil namespace="widget" links=[self]>
//
// Strings are quoted and missing values print as nil.
func (r *Resource) Inspect() string {
	r.mu.RLock()
	structure := r.structure
	links := r.links
	r.mu.RUnlock()

	var b strings.Builder
	b.WriteString("#<")
	b.WriteString(r.kind.Name())
	for name, value := range structure.All() {
		fmt.Fprintf(&b, " %s=%s", name, formatValue(value))
	}
	fmt.Fprintf(&b, " namespace=%s", strconv.Quote(r.Namespace()))
	if r.mock {
		b.WriteString(" mock=true")
	}
	if len(links) > 0 {
		fmt.Fprintf(&b, " links=[%s]", strings.Join(links.Relations(), " "))
	}
	b.WriteString(">")
	return b.String()
}

func (r *Resource) String() string {
	return r.Inspect()
}

func formatValue(value any) string {
	if value == nil || types.IsAbsent(value) {
		return "nil"
	}
	switch typed := value.(type) {
	case string:
		return strconv.Quote(typed)
	case *Resource:
		return typed.Inspect()
	case *Structure:
		return typed.Inspect()
	case []any:
		parts := make([]string, len(typed))
		for i, item := range typed {
			parts[i] = formatValue(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return fmt.Sprint(value)
}
