package core

import (
	"context"

	"frenetic/internal/ports"
	"frenetic/internal/types"
)

// MockDefinition supplies the default attributes of a resource type in
// test mode.  Defaults is called once per use and its result copied, so
// no two mocks share state.
type MockDefinition struct {
	Defaults func() types.Params
}

// StaticMock returns a definition that always yields a copy of defaults.
func StaticMock(defaults types.Params) *MockDefinition {
	snapshot := defaults.Clone()
	return &MockDefinition{
		Defaults: func() types.Params { return snapshot.Clone() },
	}
}

// MockFromSource serves namespace's defaults from a fixture source.  It
// returns nil when the source has no entry, leaving the type without a
// mock.
func MockFromSource(source ports.MockSourcePort, namespace string) *MockDefinition {
	if source == nil || !source.HasMock(namespace) {
		return nil
	}
	return &MockDefinition{
		Defaults: func() types.Params {
			defaults, _ := source.Defaults(namespace)
			return defaults
		},
	}
}

// DefaultAttributes returns a fresh copy of the mock defaults of rt.
func DefaultAttributes(rt *ResourceType) (types.Params, error) {
	if !rt.HasMock() {
		return nil, types.UndefinedResourceMockError(rt.Namespace(), rt.Name())
	}
	return types.NormalizeParams(rt.mock.Defaults()).Clone(), nil
}

// AsMock builds a resource from the mock defaults of rt overlaid with
// overrides.  The property set is the set of default keys; neither the
// schema nor the transport is consulted.
func AsMock(ctx context.Context, rt *ResourceType, overrides any) (*Resource, error) {
	return asMock(ctx, rt, overrides, false)
}

// asMock with nested set builds an embedded element.  Its embedding comes
// only from the enclosing payload, never from its own defaults, so mocks
// that embed their own type or each other terminate.
func asMock(ctx context.Context, rt *ResourceType, overrides any, nested bool) (*Resource, error) {
	defaults, err := DefaultAttributes(rt)
	if err != nil {
		return nil, err
	}
	if nested {
		delete(defaults, types.EmbeddedKey)
	}
	params := defaults.Merge(types.NormalizeParams(overrides).Clone())
	return materialize(ctx, rt, attributeKeys(defaults), params, true)
}
