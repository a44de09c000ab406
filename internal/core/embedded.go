package core

import (
	"context"

	"github.com/rs/zerolog/log"

	"frenetic/internal/types"
)

// ResolveEmbedded materializes the "_embedded" section of raw for a
// resource of type owner.  Each relation becomes a resource of the type
// registered under EmbeddedTypeName(owner, relation), or a generic
// Structure when no such type exists.  Lists are resolved element-wise.
// A missing section yields an empty mapping.
func ResolveEmbedded(ctx context.Context, raw types.Params, owner *ResourceType) (map[string]any, error) {
	section, ok := types.AsParams(raw[types.EmbeddedKey])
	if !ok {
		return map[string]any{}, nil
	}
	resolved := make(map[string]any, len(section))
	for _, relation := range section.Keys() {
		value, err := resolveRelation(ctx, owner, relation, section[relation])
		if err != nil {
			return nil, err
		}
		resolved[relation] = value
	}
	return resolved, nil
}

func resolveRelation(ctx context.Context, owner *ResourceType, relation string, value any) (any, error) {
	if list, ok := value.([]any); ok {
		items := make([]any, 0, len(list))
		for _, item := range list {
			attrs, ok := types.AsParams(item)
			if !ok {
				items = append(items, item)
				continue
			}
			built, err := resolveOne(ctx, owner, relation, attrs)
			if err != nil {
				return nil, err
			}
			items = append(items, built)
		}
		return items, nil
	}
	attrs, ok := types.AsParams(value)
	if !ok {
		return value, nil
	}
	return resolveOne(ctx, owner, relation, attrs)
}

func resolveOne(ctx context.Context, owner *ResourceType, relation string, attrs types.Params) (Record, error) {
	typeName := EmbeddedTypeName(owner.Name(), relation)
	target, ok := owner.registry.Lookup(typeName)
	if !ok {
		log.Debug().
			Str("owner", owner.Name()).
			Str("relation", relation).
			Str("type", typeName).
			Msg("no resource type for embedded relation, using generic structure")
		owner.registry.metrics.EmbeddedFallback(relation)
		return NewGeneric(attrs), nil
	}
	var (
		built *Resource
		err   error
	)
	if owner.TestMode() && target.HasMock() {
		built, err = asMock(ctx, target, attrs, true)
	} else {
		built, err = New(ctx, target, attrs)
	}
	if err != nil {
		return nil, err
	}
	return built, nil
}
