// Package shared provides small helpers used by more than one layer of
// the frenetic codebase.
package shared

import (
	"fmt"
	"net/url"
	"strings"
)

// HTTPStatusError creates a formatted error for non-2xx HTTP responses.
func HTTPStatusError(status int, path string) error {
	return fmt.Errorf("status=%d path=%s", status, path)
}

// HTTPStatusErrorWithBody creates a formatted error that includes the
// response body for non-2xx HTTP responses.
func HTTPStatusErrorWithBody(status int, path string, body string) error {
	return fmt.Errorf("status=%d path=%s response=%s", status, path, strings.TrimSpace(body))
}

// ResolveURL resolves a resource path against the API base URL the way a
// browser resolves an href: "/x" is relative to the host, "x" to the base
// directory, and absolute URLs are returned untouched.
func ResolveURL(base string, path string) (string, error) {
	baseURL, err := url.Parse(strings.TrimSpace(base))
	if err != nil {
		return "", err
	}
	ref, err := url.Parse(strings.TrimSpace(path))
	if err != nil {
		return "", err
	}
	if !strings.HasSuffix(baseURL.Path, "/") {
		baseURL.Path += "/"
	}
	return baseURL.ResolveReference(ref).String(), nil
}
