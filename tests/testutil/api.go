package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"frenetic/internal/types"
)

// APIRoot is the path the fake API serves its schema document from.
const APIRoot = "/api"

// RecordedRequest is one request seen by FakeAPI.
type RecordedRequest struct {
	Method    string
	Path      string
	User      string
	Password  string
	Accept    string
	RequestID string
	Body      map[string]any
}

// FakeAPI is an in-memory HAL+JSON API.  The root document is the schema;
// every other path under APIRoot is a stored resource.  POST to a
// collection path stores the body under the next numeric id and adds a
// self link.
type FakeAPI struct {
	Server *httptest.Server

	mu         sync.Mutex
	schema     types.Params
	rootStatus int
	resources  map[string]types.Params
	failures   map[string][]int
	requests   []RecordedRequest
	nextID     int
}

// NewFakeAPI starts a server that is closed when the test ends.
func NewFakeAPI(t *testing.T, schema types.Params) *FakeAPI {
	t.Helper()
	api := &FakeAPI{
		schema:     schema,
		rootStatus: http.StatusOK,
		resources:  map[string]types.Params{},
		failures:   map[string][]int{},
	}
	router := chi.NewRouter()
	router.Use(api.record)
	router.Get(APIRoot, api.handleRoot)
	router.Get(APIRoot+"/*", api.handleGet)
	router.Put(APIRoot+"/*", api.handlePut)
	router.Post(APIRoot+"/*", api.handlePost)
	router.Delete(APIRoot+"/*", api.handleDelete)
	api.Server = httptest.NewServer(router)
	t.Cleanup(api.Server.Close)
	return api
}

// URL is the API base URL (server + APIRoot).
func (f *FakeAPI) URL() string {
	return f.Server.URL + APIRoot
}

// Store seeds a resource.  A self link is added when missing.
func (f *FakeAPI) Store(path string, body types.Params) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resources[path] = withSelfLink(path, body)
}

// Resource returns the stored body at path.
func (f *FakeAPI) Resource(path string) (types.Params, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	body, ok := f.resources[path]
	return body, ok
}

// SetRootStatus makes the root document answer with status.
func (f *FakeAPI) SetRootStatus(status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rootStatus = status
}

// FailNext makes the next len(statuses) requests to path answer with the
// given statuses, in order.
func (f *FakeAPI) FailNext(path string, statuses ...int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[path] = append(f.failures[path], statuses...)
}

func (f *FakeAPI) Requests() []RecordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]RecordedRequest(nil), f.requests...)
}

// Count returns how many requests matched method and path.
func (f *FakeAPI) Count(method string, path string) int {
	n := 0
	for _, req := range f.Requests() {
		if req.Method == method && req.Path == path {
			n++
		}
	}
	return n
}

func (f *FakeAPI) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, _ := r.BasicAuth()
		rec := RecordedRequest{
			Method:    r.Method,
			Path:      r.URL.Path,
			User:      user,
			Password:  pass,
			Accept:    r.Header.Get("Accept"),
			RequestID: r.Header.Get("X-Request-Id"),
		}
		if r.Body != nil && (r.Method == http.MethodPost || r.Method == http.MethodPut) {
			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
				rec.Body = body
			}
		}
		f.mu.Lock()
		f.requests = append(f.requests, rec)
		var status int
		if queued := f.failures[r.URL.Path]; len(queued) > 0 {
			status = queued[0]
			f.failures[r.URL.Path] = queued[1:]
		}
		f.mu.Unlock()
		if status != 0 {
			writeJSON(w, status, map[string]any{"error": http.StatusText(status)})
			return
		}
		if rec.Body != nil {
			r = r.WithContext(withBody(r.Context(), rec.Body))
		}
		next.ServeHTTP(w, r)
	})
}

func (f *FakeAPI) handleRoot(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	status := f.rootStatus
	schema := f.schema
	f.mu.Unlock()
	if status != http.StatusOK {
		writeJSON(w, status, map[string]any{"error": http.StatusText(status)})
		return
	}
	writeJSON(w, http.StatusOK, schema)
}

func (f *FakeAPI) handleGet(w http.ResponseWriter, r *http.Request) {
	body, ok := f.Resource(r.URL.Path)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "not found"})
		return
	}
	writeJSON(w, http.StatusOK, body)
}

func (f *FakeAPI) handlePut(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	if _, ok := f.Resource(path); !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "not found"})
		return
	}
	f.Store(path, bodyFrom(r))
	body, _ := f.Resource(path)
	writeJSON(w, http.StatusOK, body)
}

func (f *FakeAPI) handlePost(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.nextID++
	id := f.nextID
	f.mu.Unlock()
	path := fmt.Sprintf("%s/%d", strings.TrimRight(r.URL.Path, "/"), id)
	body := bodyFrom(r)
	body["id"] = float64(id)
	f.Store(path, body)
	stored, _ := f.Resource(path)
	writeJSON(w, http.StatusCreated, stored)
}

func (f *FakeAPI) handleDelete(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	_, ok := f.resources[r.URL.Path]
	delete(f.resources, r.URL.Path)
	f.mu.Unlock()
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "not found"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func withSelfLink(path string, body types.Params) types.Params {
	out := types.Params{}
	for key, value := range body {
		out[key] = value
	}
	links, _ := types.AsParams(out[types.LinksKey])
	if links == nil {
		links = types.Params{}
	}
	if _, ok := links["self"]; !ok {
		links["self"] = map[string]any{"href": path}
	}
	out[types.LinksKey] = links
	return out
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", types.DefaultAccepts)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
