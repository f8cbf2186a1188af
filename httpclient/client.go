package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/murkdev/gameclient/logger"
)

const tracerName = "github.com/murkdev/gameclient/httpclient"

// CompletionFunc is the continuation invoked exactly once when a dispatched
// request's transport activity finishes. Callers needing extra context in the
// handler close over it.
type CompletionFunc func(Outcome)

// Client is the authenticated HTTP client for the backend API.
type Client struct {
	httpClient *http.Client
	config     Config
	creds      *CredentialStore
	log        *logger.Logger
	tracer     trace.Tracer
}

// Option customizes a Client.
type Option func(*Client)

// WithLogger sets the logger used for dispatch and diagnostic logging.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) {
		c.log = l.WithComponent("httpclient")
	}
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.httpClient = h
	}
}

// New creates a new client with the given configuration.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()

	c := &Client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		config: cfg,
		creds:  NewCredentialStore(cfg.InitialCredential),
		log:    logger.NewDefault("gameclient").WithComponent("httpclient"),
		tracer: otel.Tracer(tracerName),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Credentials returns the process-wide credential store shared by every
// request this client builds.
func (c *Client) Credentials() *CredentialStore {
	return c.creds
}

// Unwrap returns the underlying *http.Client for advanced use cases.
func (c *Client) Unwrap() *http.Client {
	return c.httpClient
}

// Send dispatches the request asynchronously and returns immediately.
// The completion runs on its own goroutine once the transport finishes;
// it is invoked exactly once per call. There is no retry and no ordering
// guarantee across separate dispatches.
func (c *Client) Send(ctx context.Context, req Request, complete CompletionFunc) {
	go func() {
		complete(c.Do(ctx, req))
	}()
}

// Do executes the request synchronously and folds every transport-level
// failure into the returned Outcome. It is the blocking core Send wraps.
func (c *Client) Do(ctx context.Context, req Request) Outcome {
	id := uuid.NewString()

	ctx, span := c.tracer.Start(ctx, "gameclient.request", trace.WithAttributes(
		attribute.String("http.request.method", req.Method.String()),
		attribute.String("url.path", req.Route),
	))
	defer span.End()

	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		c.log.WithError(err).Error("building request failed", logger.Fields(
			logger.FieldRequestID, id,
			logger.FieldRoute, req.Route,
		))
		return Outcome{}
	}

	c.log.Debug("dispatching request", logger.Fields(
		logger.FieldRequestID, id,
		logger.FieldMethod, req.Method.String(),
		logger.FieldRoute, req.Route,
	))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		span.RecordError(err)
		c.log.WithError(err).Warn("request did not complete", logger.Fields(
			logger.FieldRequestID, id,
			logger.FieldRoute, req.Route,
		))
		return Outcome{}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		c.log.WithError(err).Warn("reading response body failed", logger.Fields(
			logger.FieldRequestID, id,
			logger.FieldRoute, req.Route,
		))
		return Outcome{}
	}

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	return Outcome{
		Succeeded:  true,
		StatusCode: resp.StatusCode,
		Body:       body,
	}
}

// ResponseIsValid classifies a completed outcome, logging the numeric status
// code as a diagnostic when the backend rejected the request. It must be
// checked before decoding: an error response's body is never parsed.
func (c *Client) ResponseIsValid(o Outcome) bool {
	switch Classify(o) {
	case StatusValid:
		return true
	case StatusTransportFailed:
		return false
	default:
		c.log.Warn("response returned error code", logger.Fields(
			logger.FieldStatus, o.StatusCode,
		))
		return false
	}
}

// buildRequest constructs the outbound *http.Request: base URL plus route,
// body, and the fixed header set. The authorization value is the credential
// snapshot taken now, not at send time.
func (c *Client) buildRequest(ctx context.Context, req Request) (*http.Request, error) {
	verb := req.Method.String()
	if verb == "" {
		return nil, fmt.Errorf("httpclient: unsupported method %d", req.Method)
	}

	url := strings.TrimRight(c.config.BaseURL, "/") + "/" + strings.TrimLeft(req.Route, "/")

	var body io.Reader
	if req.Body != "" {
		body = strings.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, verb, url, body)
	if err != nil {
		return nil, err
	}

	c.setRequestHeaders(httpReq)
	return httpReq, nil
}

// setRequestHeaders attaches the standard header set sent on every request.
// "Accepts" is the header name the backend expects, not the standard Accept.
func (c *Client) setRequestHeaders(r *http.Request) {
	r.Header.Set("User-Agent", c.config.Agent)
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("Accepts", "application/json")
	r.Header.Set(c.config.AuthHeader, c.creds.Get())
}
