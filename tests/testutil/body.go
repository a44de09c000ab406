package testutil

import (
	"context"
	"net/http"

	"frenetic/internal/types"
)

type bodyKey struct{}

func withBody(ctx context.Context, body map[string]any) context.Context {
	return context.WithValue(ctx, bodyKey{}, body)
}

// bodyFrom returns the JSON body decoded by the recording middleware.
func bodyFrom(r *http.Request) types.Params {
	body, _ := r.Context().Value(bodyKey{}).(map[string]any)
	out := types.Params{}
	for key, value := range body {
		out[key] = value
	}
	return out
}
