package core

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"frenetic/internal/types"
)

type stubHTTP struct {
	mu        sync.Mutex
	gets      map[string]int
	responses map[string]types.Response
	err       error
	delay     time.Duration
	gate      chan struct{}
}

func newStubHTTP() *stubHTTP {
	return &stubHTTP{
		gets:      map[string]int{},
		responses: map[string]types.Response{},
	}
}

func (s *stubHTTP) respond(path string, status int, body types.Params) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[path] = types.Response{Status: status, Body: body}
}

func (s *stubHTTP) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func (s *stubHTTP) getCount(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gets[path]
}

func (s *stubHTTP) totalGets() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.gets {
		total += n
	}
	return total
}

func (s *stubHTTP) Get(ctx context.Context, path string) (types.Response, error) {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	s.mu.Lock()
	s.gets[path]++
	resp, ok := s.responses[path]
	err := s.err
	s.mu.Unlock()
	if s.gate != nil {
		select {
		case <-s.gate:
		case <-ctx.Done():
			return types.Response{}, ctx.Err()
		}
	}
	if err != nil {
		return types.Response{}, err
	}
	if !ok {
		return types.Response{Status: 404}, nil
	}
	return resp, nil
}

func (s *stubHTTP) Put(_ context.Context, path string, _ types.Params) (types.Response, error) {
	return types.Response{Status: 405}, nil
}

func (s *stubHTTP) Post(_ context.Context, path string, _ types.Params) (types.Response, error) {
	return types.Response{Status: 405}, nil
}

func (s *stubHTTP) Delete(_ context.Context, path string) (types.Response, error) {
	return types.Response{Status: 405}, nil
}

const testRoot = "/api"

func shopSchema() types.Params {
	return types.Params{
		"widget": map[string]any{
			"properties": map[string]any{
				"name": map[string]any{"type": "string"},
				"size": map[string]any{"type": "number"},
			},
		},
		"part": map[string]any{
			"properties": map[string]any{
				"sku": map[string]any{},
				"qty": map[string]any{},
			},
		},
		"broken": map[string]any{
			"description": "no properties here",
		},
		"_links": map[string]any{
			"widget": map[string]any{"href": "/api/widgets/{id}", "templated": true},
		},
	}
}

// newShopClient returns a live client whose root document is shopSchema.
func newShopClient(t *testing.T) (*Client, *stubHTTP) {
	t.Helper()
	stub := newStubHTTP()
	stub.respond(testRoot, 200, shopSchema())
	client, err := NewClient(types.Config{URL: "http://example.org" + testRoot}, stub, nil)
	require.NoError(t, err)
	return client, stub
}

type recordingMetrics struct {
	mu        sync.Mutex
	fetches   []bool
	built     []string
	fallbacks []string
}

func (m *recordingMetrics) SchemaFetched(success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetches = append(m.fetches, success)
}

func (m *recordingMetrics) ResourceBuilt(namespace string, _ bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.built = append(m.built, namespace)
}

func (m *recordingMetrics) EmbeddedFallback(relation string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fallbacks = append(m.fallbacks, relation)
}
