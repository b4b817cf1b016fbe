// Package remote implements the auth, custom-food and diet-record services over HTTP.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"dietlog/config"
	deliverycontext "dietlog/internal/delivery/context"
	"dietlog/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

// maxErrorBody caps how much of a failed response is read for its message.
const maxErrorBody = 64 << 10

// TransportParams holds dependencies for Transport, injected by Fx
type TransportParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// Transport is shared by the three service clients: one cookie jar so the
// session cookie issued by the auth service rides along on every call, and one
// limiter pacing the whole client.
type Transport struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewTransport builds the shared transport from config.
func NewTransport(params TransportParams) (*Transport, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, errors.Wrap(err, "create cookie jar")
	}

	cfg := params.Config.Remote
	httpClient := &http.Client{
		Timeout: cfg.Timeout,
		Jar:     jar,
	}

	return NewTransportWithClient(httpClient, rate.NewLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst), params.Logger), nil
}

// NewTransportWithClient wires a caller-supplied client; a nil limiter disables pacing.
func NewTransportWithClient(httpClient *http.Client, limiter *rate.Limiter, logger *slog.Logger) *Transport {
	return &Transport{
		httpClient: httpClient,
		limiter:    limiter,
		logger:     logger,
	}
}

// endpoint is one service origin reached through the shared transport.
type endpoint struct {
	name      string
	base      *url.URL
	transport *Transport
}

func (t *Transport) endpoint(name, rawBase string) (*endpoint, error) {
	base, err := url.Parse(strings.TrimRight(rawBase, "/"))
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s base url", name)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, errors.Errorf("%s base url %q must be absolute", name, rawBase)
	}

	return &endpoint{name: name, base: base, transport: t}, nil
}

// call issues one JSON request. Non-2xx answers become *service.StatusError.
// When out is non-nil the body is decoded into it; decoded reports whether a
// body was present.
func (e *endpoint) call(ctx context.Context, method, path string, query url.Values, body, out any) (status int, decoded bool, err error) {
	op := method + " " + path

	if e.transport.limiter != nil {
		if err := e.transport.limiter.Wait(ctx); err != nil {
			return 0, false, errors.Wrapf(err, "%s: rate limit wait", op)
		}
	}

	target := *e.base
	target.Path = e.base.Path + path
	if len(query) > 0 {
		target.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, false, errors.Wrapf(err, "%s: encode body", op)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return 0, false, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := e.transport.httpClient.Do(req)
	if err != nil {
		return 0, false, errors.Wrapf(err, "%s %s", e.name, op)
	}
	defer resp.Body.Close()

	e.transport.logger.Debug("Remote call",
		slog.String("service", e.name),
		slog.String("op", op),
		slog.Int("status", resp.StatusCode),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, false, &service.StatusError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Message:    readErrorMessage(resp.Body),
		}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return resp.StatusCode, false, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return resp.StatusCode, false, nil
		}

		return resp.StatusCode, false, errors.Wrapf(err, "%s: decode response", op)
	}

	return resp.StatusCode, true, nil
}

// readErrorMessage pulls {"error": "..."} out of a failed response, if present.
func readErrorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}
	if payload.Error != "" {
		return payload.Error
	}

	return payload.Message
}
