package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"frenetic/internal/core"
	"frenetic/internal/shared"
	"frenetic/internal/types"
)

// Find loads one member of rt.  The member path comes from the schema's
// link for the namespace, or "<namespace>s/{id}" when the schema has none,
// expanded with params.  In test mode the resource is built from the
// type's mock with params as overrides.
func (s Service) Find(ctx context.Context, rt *core.ResourceType, params types.Params) (*core.Resource, error) {
	if rt == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("resource type is required")
	}
	if rt.TestMode() {
		return core.AsMock(ctx, rt, params)
	}
	doc, err := rt.API().Schema.Document(ctx)
	if err != nil {
		return nil, err
	}
	link, ok := doc.MemberLink(rt.Namespace())
	if !ok {
		link = types.Link{Href: rt.Namespace() + "s/{id}", Templated: true}
	}
	path := link.Expand(templateParams(params))
	log.Debug().
		Str("type", rt.Name()).
		Str("path", path).
		Msg("finding resource")
	return s.Fetch(ctx, rt, path)
}

// Fetch GETs path and materializes the response body as rt.  In test
// mode the type's mock defaults are returned instead.
func (s Service) Fetch(ctx context.Context, rt *core.ResourceType, path string) (*core.Resource, error) {
	if rt != nil && rt.TestMode() {
		return core.AsMock(ctx, rt, nil)
	}
	if rt == nil || rt.API() == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("resource type has no api client")
	}
	resp, err := rt.API().HTTP.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := responseError(resp, path); err != nil {
		return nil, err
	}
	return core.New(ctx, rt, resp.Body)
}

// responseError maps an unsuccessful response to an error.  404 and 410
// are not-found, everything else is internal.
func responseError(resp types.Response, path string) error {
	if resp.Success() {
		return nil
	}
	code := errbuilder.CodeInternal
	if resp.Status == http.StatusNotFound || resp.Status == http.StatusGone {
		code = errbuilder.CodeNotFound
	}
	return errbuilder.New().
		WithCode(code).
		WithMsg(fmt.Sprintf("api request failed: %s", path)).
		WithCause(shared.HTTPStatusErrorWithBody(resp.Status, path, responseMessage(resp.Body)))
}

func responseMessage(body types.Params) string {
	if body == nil {
		return ""
	}
	for _, key := range []string{"error", "message"} {
		if msg, ok := body[key].(string); ok {
			return msg
		}
	}
	return ""
}

func templateParams(params types.Params) map[string]string {
	out := make(map[string]string, len(params))
	for key, value := range params {
		if value == nil || types.IsAbsent(value) {
			continue
		}
		out[key] = strings.TrimSpace(fmt.Sprint(value))
	}
	return out
}
