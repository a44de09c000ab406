package core

import (
	"net/url"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"frenetic/internal/ports"
	"frenetic/internal/types"
)

// Client ties a transport to its configuration and the schema registry
// that serves every resource type bound to it.
type Client struct {
	HTTP   ports.HTTPClientPort
	Config types.Config
	Schema ports.SchemaPort
}

// NewClient builds a client whose schema registry fetches the path
// component of cfg.URL.
func NewClient(cfg types.Config, http ports.HTTPClientPort, metrics ports.MetricsPort) (*Client, error) {
	if http == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("client requires an http port")
	}
	rootPath, err := RootPath(cfg.URL)
	if err != nil {
		return nil, err
	}
	return &Client{
		HTTP:   http,
		Config: cfg,
		Schema: NewSchemaRegistry(http, rootPath, metrics),
	}, nil
}

// TestMode reports the collaborator-supplied test mode flag.
func (c *Client) TestMode() bool {
	return c == nil || c.Config.TestMode
}

// RootPath extracts the path of the API root from its URL.
func RootPath(apiURL string) (string, error) {
	trimmed := strings.TrimSpace(apiURL)
	if trimmed == "" {
		return "/", nil
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", types.ConfigurationError("invalid url "+trimmed, err)
	}
	if parsed.Path == "" {
		return "/", nil
	}
	return parsed.Path, nil
}
