package types

import "sort"

// SchemaDocument is the body of the API root resource.  Each top-level key
// is a namespace whose value describes the resource type registered under
// it.  Keys beginning with an underscore (such as "_links") are reserved by
// HAL and never treated as namespaces.
type SchemaDocument map[string]any

// PropertyDescriptor is the slice of a namespace entry the mapper cares
// about: the set of declared property names.
type PropertyDescriptor struct {
	// Properties maps each declared property name to its (opaque) descriptor.
	Properties map[string]any
}

// Names returns the declared property names in declaration order.
func (d PropertyDescriptor) Names() []string {
	names := make([]string, 0, len(d.Properties))
	for name := range d.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Descriptor returns the property descriptor for namespace.  ok is false
// when the namespace has no entry or the entry lacks a "properties" mapping.
func (d SchemaDocument) Descriptor(namespace string) (PropertyDescriptor, bool) {
	entry, ok := AsParams(d[namespace])
	if !ok {
		return PropertyDescriptor{}, false
	}
	props, ok := AsParams(entry["properties"])
	if !ok {
		return PropertyDescriptor{}, false
	}
	return PropertyDescriptor{Properties: props}, true
}

// Namespaces lists the namespace keys of the document, sorted.
func (d SchemaDocument) Namespaces() []string {
	names := make([]string, 0, len(d))
	for key := range d {
		if len(key) > 0 && key[0] == '_' {
			continue
		}
		names = append(names, key)
	}
	sort.Strings(names)
	return names
}

// MemberLink returns the href advertised under "_links.<namespace>" of the
// root document, if any.
func (d SchemaDocument) MemberLink(namespace string) (Link, bool) {
	links := ParseLinks(d[LinksKey])
	return links.First(namespace)
}
