package app

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"frenetic/internal/core"
	"frenetic/internal/types"
)

// Save writes the resource back to the API: PUT to its self link when it
// has one, POST to "<namespace>s" otherwise.  A response body replaces
// the resource's structure.
func (s Service) Save(ctx context.Context, res *core.Resource) error {
	if err := persistable(res); err != nil {
		return err
	}
	client := res.Type().API().HTTP
	body := res.Params()

	var (
		resp types.Response
		err  error
		path string
	)
	if self, ok := res.SelfHref(); ok {
		path = self
		resp, err = client.Put(ctx, path, body)
	} else {
		path = res.Namespace() + "s"
		resp, err = client.Post(ctx, path, body)
	}
	if err != nil {
		return err
	}
	if err := responseError(resp, path); err != nil {
		return err
	}
	log.Debug().
		Str("type", res.Type().Name()).
		Str("path", path).
		Int("status", resp.Status).
		Msg("resource saved")
	if resp.Body == nil {
		return nil
	}
	return res.Rebuild(ctx, resp.Body)
}

// Delete removes the resource behind its self link.
func (s Service) Delete(ctx context.Context, res *core.Resource) error {
	self, err := selfLink(res)
	if err != nil {
		return err
	}
	resp, err := res.Type().API().HTTP.Delete(ctx, self)
	if err != nil {
		return err
	}
	return responseError(resp, self)
}

// Reload re-reads the resource from its self link.
func (s Service) Reload(ctx context.Context, res *core.Resource) error {
	self, err := selfLink(res)
	if err != nil {
		return err
	}
	resp, err := res.Type().API().HTTP.Get(ctx, self)
	if err != nil {
		return err
	}
	if err := responseError(resp, self); err != nil {
		return err
	}
	return res.Rebuild(ctx, resp.Body)
}

func persistable(res *core.Resource) error {
	if res == nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("resource is required")
	}
	if res.IsMock() || res.Type().API() == nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("mock resources cannot be persisted: " + res.Type().Name())
	}
	return nil
}

func selfLink(res *core.Resource) (string, error) {
	if err := persistable(res); err != nil {
		return "", err
	}
	self, ok := res.SelfHref()
	if !ok || self == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("resource has no self link: " + res.Type().Name())
	}
	return self, nil
}
