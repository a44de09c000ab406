package app

import (
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"frenetic/internal/core"
	"frenetic/internal/ports"
)

// Connect loads configuration, loads mock fixture files and builds the
// API client.  Nothing is fetched until a resource is materialized.
func (s Service) Connect(req ConnectRequest) (*core.Client, error) {
	if s.ConfigSource == nil || s.Transport == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("service is missing a config source or transport")
	}
	cfg, err := s.ConfigSource.Load(req.Overrides)
	if err != nil {
		return nil, err
	}
	for _, path := range req.MockFiles {
		if s.Mocks == nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg("service has no mock source for " + path)
		}
		if err := s.Mocks.LoadMocks(path); err != nil {
			return nil, err
		}
	}
	client, err := core.NewClient(cfg, s.Transport(cfg), s.metrics())
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("url", cfg.URL).
		Bool("test_mode", cfg.TestMode).
		Int("mock_files", len(req.MockFiles)).
		Msg("api client ready")
	return client, nil
}

// Register declares a resource type on reg, bound to req.Client, with its
// mock taken from the loaded fixture files when one exists.
func (s Service) Register(reg *core.Registry, req RegisterRequest) (*core.ResourceType, error) {
	namespace := req.Namespace
	if namespace == "" {
		namespace = core.DeriveNamespace(req.Name)
	}
	return reg.Register(core.ResourceTypeConfig{
		Name:      req.Name,
		Namespace: req.Namespace,
		API:       req.Client,
		Mock:      core.MockFromSource(s.Mocks, namespace),
	})
}

// NewRegistry returns a registry reporting to the service metrics.
func (s Service) NewRegistry() *core.Registry {
	return core.NewRegistry(core.WithMetrics(s.metrics()))
}

func (s Service) metrics() ports.MetricsPort {
	if s.Metrics == nil {
		return ports.NopMetrics{}
	}
	return s.Metrics
}
