package core

import "frenetic/internal/types"

// Links returns the HAL links of the resource.
func (r *Resource) Links() types.Links {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.links
}

// Link returns the first link of rel.
func (r *Resource) Link(rel string) (types.Link, bool) {
	return r.Links().First(rel)
}

// Href expands the first link of rel with params.  ok is false when the
// resource has no such link.
func (r *Resource) Href(rel string, params map[string]string) (string, bool) {
	link, ok := r.Link(rel)
	if !ok {
		return "", false
	}
	return link.Expand(params), true
}

// SelfHref is the href of the "self" link, if any.
func (r *Resource) SelfHref() (string, bool) {
	return r.Href("self", nil)
}
