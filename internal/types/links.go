package types

import (
	"regexp"
	"sort"
)

// Link is a single HAL link object.
type Link struct {
	Href      string
	Templated bool
	Name      string
}

// Links maps a relation name to its link objects.
type Links map[string][]Link

var templateVar = regexp.MustCompile(`\{([^{}]+)\}`)

// ParseLinks reads a "_links" section.  Both the single-object and the
// array form of a relation are accepted; entries without href are skipped.
func ParseLinks(raw any) Links {
	section, ok := AsParams(raw)
	if !ok {
		return Links{}
	}
	links := make(Links, len(section))
	for rel, value := range section {
		var items []any
		if list, ok := value.([]any); ok {
			items = list
		} else {
			items = []any{value}
		}
		for _, item := range items {
			entry, ok := AsParams(item)
			if !ok {
				continue
			}
			href, _ := entry["href"].(string)
			if href == "" {
				continue
			}
			templated, _ := entry["templated"].(bool)
			name, _ := entry["name"].(string)
			links[rel] = append(links[rel], Link{Href: href, Templated: templated, Name: name})
		}
	}
	return links
}

// First returns the first link registered for rel.
func (l Links) First(rel string) (Link, bool) {
	items := l[rel]
	if len(items) == 0 {
		return Link{}, false
	}
	return items[0], true
}

// Relations lists relation names, sorted.
func (l Links) Relations() []string {
	rels := make([]string, 0, len(l))
	for rel := range l {
		rels = append(rels, rel)
	}
	sort.Strings(rels)
	return rels
}

// Expand substitutes {name} placeholders with values from params.  Names
// missing from params expand to the empty string.
func (l Link) Expand(params map[string]string) string {
	return templateVar.ReplaceAllStringFunc(l.Href, func(match string) string {
		key := match[1 : len(match)-1]
		return params[key]
	})
}
