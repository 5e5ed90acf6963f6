package meeting

import (
	"context"
	"maps"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	corehttp "github.com/kochabx/meetclient/core/net/http"
	"github.com/kochabx/meetclient/core/util/id"
	"github.com/kochabx/meetclient/errors"
	"github.com/kochabx/meetclient/log"
	"github.com/kochabx/meetclient/metrics"
)

// Client calls the meeting-management service. It holds no per-call state
// and is safe for concurrent use. All calls share one *http.Client, so
// keep-alive connections are reused between calls.
type Client struct {
	baseURL   string
	apiKeyEnv string
	headers   map[string]string
	doer      corehttp.Doer
	logger    *log.Logger
	metrics   *metrics.ClientCollector
}

// Option configures a Client
type Option func(*Client)

// WithDoer replaces the transport, mainly for tests
func WithDoer(d corehttp.Doer) Option {
	return func(c *Client) {
		c.doer = d
	}
}

// WithHTTPClient sends requests through hc, which is shared by every call
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.doer = corehttp.New(corehttp.WithClient(hc))
	}
}

// WithLogger sets the logger; defaults to log.G
func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithMetrics records every dispatch on m
func WithMetrics(m *metrics.ClientCollector) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithAPIKeyEnv overrides the variable name quoted in the invalid-key message
func WithAPIKeyEnv(name string) Option {
	return func(c *Client) {
		c.apiKeyEnv = name
	}
}

// New creates a client for cfg. Trailing slashes are stripped from the base URL.
func New(cfg Config, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		apiKeyEnv: cfg.APIKeyEnv,
		headers: map[string]string{
			corehttp.HeaderContentType:   corehttp.ContentTypeJSON,
			corehttp.HeaderAuthorization: "Bearer " + cfg.APIKey,
		},
		logger: log.G,
	}
	if cfg.Timeout > 0 {
		c.doer = corehttp.New(corehttp.WithClient(&http.Client{Timeout: cfg.Timeout}))
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.doer == nil {
		c.doer = corehttp.New()
	}
	if c.logger == nil {
		c.logger = log.G
	}
	if c.apiKeyEnv == "" {
		c.apiKeyEnv = DefaultAPIKeyEnv
	}
	return c
}

// BaseURL returns the normalized base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// dispatch sends one request and normalizes the response. route is the path
// template used for metrics; path is appended verbatim to the base URL.
// Only transport faults and non-JSON bodies are returned as errors. A request
// ID carried by ctx is forwarded, otherwise a new one is generated.
func (c *Client) dispatch(ctx context.Context, method, route, path string, body any) (Envelope, error) {
	start := time.Now()
	reqID := id.RequestID(ctx)

	headers := maps.Clone(c.headers)
	headers[corehttp.HeaderRequestID] = reqID

	resp, err := c.doer.Do(ctx, method, c.baseURL+path, body, corehttp.WithHeader(headers))
	if err != nil {
		fault := c.fault(err, method, path).WithMetadata(map[string]string{"request_id": reqID})
		c.metrics.Observe(method, route, metrics.OutcomeFault, time.Since(start))
		c.logger.Error().Err(fault).Str("request_id", reqID).Str("method", method).Str("path", path).Msg("meeting api request failed")
		return Envelope{}, fault
	}

	if !gjson.ValidBytes(resp.Body) {
		fault := errors.Decode(nil, method, path, resp.StatusCode).
			WithMetadata(map[string]string{"request_id": reqID})
		c.metrics.Observe(method, route, metrics.OutcomeFault, time.Since(start))
		c.logger.Error().Err(fault).Str("request_id", reqID).Int("status", resp.StatusCode).Msg("meeting api returned a non-JSON body")
		return Envelope{}, fault
	}

	env := c.normalize(resp.StatusCode, resp.Body)

	outcome := metrics.OutcomeOK
	if !env.Success {
		outcome = metrics.OutcomeFailure
	}
	elapsed := time.Since(start)
	c.metrics.Observe(method, route, outcome, elapsed)
	c.logger.Debug().
		Str("request_id", reqID).
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", elapsed).
		Str("error", env.Error).
		Msg("meeting api request")

	return env, nil
}

func (c *Client) normalize(status int, body []byte) Envelope {
	switch status {
	case http.StatusOK, http.StatusCreated:
		return Ok(body)
	case http.StatusUnauthorized:
		return Fail("Invalid API key - check your " + c.apiKeyEnv)
	default:
		if msg := gjson.GetBytes(body, "error"); msg.Exists() && msg.Type != gjson.Null {
			return Fail(msg.String())
		}
		return Fail("HTTP " + strconv.Itoa(status))
	}
}

func (c *Client) fault(err error, method, path string) *errors.Error {
	var encErr *corehttp.EncodeError
	if errors.As(err, &encErr) {
		return errors.Encode(encErr.Err, method, path)
	}
	return errors.Transport(err, method, path)
}
