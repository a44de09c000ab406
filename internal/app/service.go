package app

import (
	"frenetic/internal/adapters"
	"frenetic/internal/ports"
	"frenetic/internal/types"
)

type Service struct {
	ConfigSource ports.ConfigSourcePort
	Mocks        ports.MockSourcePort
	Metrics      ports.MetricsPort
	Transport    func(types.Config) ports.HTTPClientPort
}

func NewService(configPath string, environment string) Service {
	return Service{
		ConfigSource: adapters.NewConfigFileAdapter(configPath, environment),
		Mocks:        adapters.NewMockFileAdapter(),
		Metrics:      ports.NopMetrics{},
		Transport: func(cfg types.Config) ports.HTTPClientPort {
			return adapters.NewHALClientAdapter(cfg)
		},
	}
}
