package app

import "frenetic/internal/core"

type ConnectRequest struct {
	Overrides map[string]any
	MockFiles []string
}

type RegisterRequest struct {
	Name      string
	Namespace string
	Client    *core.Client
}

type SchemaRequest struct {
	Client    *core.Client
	Namespace string
}

type SchemaNamespace struct {
	Namespace  string   `yaml:"namespace"`
	Properties []string `yaml:"properties"`
	MemberLink string   `yaml:"member_link,omitempty"`
}

type SchemaResult struct {
	Namespaces []SchemaNamespace `yaml:"namespaces"`
}
