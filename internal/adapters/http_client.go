package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"frenetic/internal/ports"
	"frenetic/internal/shared"
	"frenetic/internal/types"
)

const defaultHTTPTimeout = 60 * time.Second
const defaultHTTPRetries = 3
const defaultHTTPRetryDelay = 200 * time.Millisecond
const maxHTTPRetryDelay = 2 * time.Second

// HALClientAdapter speaks HAL+JSON to the API configured by BaseURL.
// Requests carry basic auth when a user or API key is set.  Transport
// failures, 5xx and 429 responses are retried with backoff; every other
// status is handed back to the caller untouched.
type HALClientAdapter struct {
	BaseURL    string
	User       string
	Password   string
	APIKey     string
	Accepts    string
	Version    string
	Timeout    time.Duration
	Retries    int
	RetryDelay time.Duration
	Client     *http.Client
}

func NewHALClientAdapter(cfg types.Config) *HALClientAdapter {
	accepts := strings.TrimSpace(cfg.Accepts)
	if accepts == "" {
		accepts = types.DefaultAccepts
	}
	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	retries := cfg.Retries
	if retries <= 0 {
		retries = defaultHTTPRetries
	}
	delay := time.Duration(cfg.RetryDelayMs) * time.Millisecond
	if delay <= 0 {
		delay = defaultHTTPRetryDelay
	}
	return &HALClientAdapter{
		BaseURL:    cfg.URL,
		User:       cfg.User,
		Password:   cfg.Password,
		APIKey:     cfg.APIKey,
		Accepts:    accepts,
		Version:    cfg.Version,
		Timeout:    timeout,
		Retries:    retries,
		RetryDelay: delay,
		Client:     &http.Client{Timeout: timeout},
	}
}

func (a *HALClientAdapter) Get(ctx context.Context, path string) (types.Response, error) {
	return a.do(ctx, http.MethodGet, path, nil)
}

func (a *HALClientAdapter) Put(ctx context.Context, path string, body types.Params) (types.Response, error) {
	return a.do(ctx, http.MethodPut, path, body)
}

func (a *HALClientAdapter) Post(ctx context.Context, path string, body types.Params) (types.Response, error) {
	return a.do(ctx, http.MethodPost, path, body)
}

func (a *HALClientAdapter) Delete(ctx context.Context, path string) (types.Response, error) {
	return a.do(ctx, http.MethodDelete, path, nil)
}

func (a *HALClientAdapter) do(ctx context.Context, method string, path string, body types.Params) (types.Response, error) {
	if strings.TrimSpace(a.BaseURL) == "" {
		return types.Response{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("api url is empty")
	}
	target, err := shared.ResolveURL(a.BaseURL, path)
	if err != nil {
		return types.Response{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid request path: " + path).
			WithCause(err)
	}
	var payload []byte
	if body != nil {
		payload, err = json.Marshal(body)
		if err != nil {
			return types.Response{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to encode request body").
				WithCause(err)
		}
	}

	attempts := a.Retries
	if !idempotent(method) && attempts > 1 {
		attempts = 1
	}
	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if ctx.Err() != nil {
			return types.Response{}, ctx.Err()
		}
		resp, retry, err := a.doOnce(ctx, method, target, payload)
		if err == nil && !retry {
			return resp, nil
		}
		if err == nil {
			// Out of attempts on a retryable status: hand the response back.
			if attempt == attempts-1 {
				return resp, nil
			}
			lastErr = shared.HTTPStatusError(resp.Status, target)
		} else {
			lastErr = err
			if !retry || attempt == attempts-1 {
				return types.Response{}, err
			}
		}
		log.Debug().
			Str("method", method).
			Str("url", target).
			Int("attempt", attempt+1).
			Err(lastErr).
			Msg("retrying api request")
		select {
		case <-ctx.Done():
			return types.Response{}, ctx.Err()
		case <-time.After(a.retryDelay(attempt)):
		}
	}
	return types.Response{}, lastErr
}

// idempotent reports whether a failed request may be sent again.  A POST
// that reached the server may already have created a resource.
func idempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPut, http.MethodDelete, http.MethodOptions:
		return true
	}
	return false
}

func (a *HALClientAdapter) doOnce(ctx context.Context, method string, target string, payload []byte) (types.Response, bool, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return types.Response{}, false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create api request").
			WithCause(err)
	}
	req.Header.Set("Accept", a.Accepts)
	req.Header.Set("X-Request-Id", uuid.NewString())
	if payload != nil {
		req.Header.Set("Content-Type", a.Accepts)
	}
	if strings.TrimSpace(a.Version) != "" {
		req.Header.Set("X-API-Version", a.Version)
	}
	a.applyBasicAuth(req)

	client := a.Client
	if client == nil {
		client = &http.Client{Timeout: a.Timeout}
	}
	resp, err := client.Do(req)
	if err != nil {
		return types.Response{}, true, errbuilder.New().
			WithCode(errbuilder.CodeUnavailable).
			WithMsg("api request failed").
			WithCause(err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return types.Response{}, true, errbuilder.New().
			WithCode(errbuilder.CodeUnavailable).
			WithMsg("failed to read api response").
			WithCause(err)
	}
	out := types.Response{Status: resp.StatusCode, Body: decodeHALBody(raw)}
	retry := resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests
	return out, retry, nil
}

func (a *HALClientAdapter) applyBasicAuth(req *http.Request) {
	user := strings.TrimSpace(a.User)
	password := a.Password
	if strings.TrimSpace(a.APIKey) != "" {
		if user == "" {
			user = "api"
		}
		password = a.APIKey
	}
	if user == "" {
		return
	}
	req.SetBasicAuth(user, password)
}

func (a *HALClientAdapter) retryDelay(attempt int) time.Duration {
	delay := a.RetryDelay * time.Duration(1<<attempt)
	if delay > maxHTTPRetryDelay {
		delay = maxHTTPRetryDelay
	}
	jitter := time.Duration(time.Now().UnixNano() % int64(delay/2+1))
	return delay + jitter
}

// decodeHALBody decodes a JSON object body.  Empty bodies and bodies that
// are not JSON objects decode to nil.
func decodeHALBody(raw []byte) types.Params {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		log.Debug().Err(err).Msg("api response is not a json object")
		return nil
	}
	return types.Params(body)
}

var _ ports.HTTPClientPort = (*HALClientAdapter)(nil)
