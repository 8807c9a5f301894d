package httpclient

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	// DefaultBaseURL is used when no base URL override is configured.
	DefaultBaseURL = "/api"
	// DefaultTimeout bounds every request that has no explicit timeout.
	DefaultTimeout = 15 * time.Second
)

// ClientConfig binds a client to a deployment.
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// Client is the shared request client. It is safe for concurrent use; the only
// state it holds is its immutable configuration and resty's transport.
type Client struct {
	client  *resty.Client
	baseURL string
	timeout time.Duration
	call    Call
}

// New creates a Client bound to cfg. Failures are logged through log exactly
// once before being returned. Extra middlewares run inside the logging wrapper.
func New(cfg ClientConfig, log Logger, mws ...Middleware) *Client {
	cfg = normalizeConfig(cfg)

	c := &Client{
		client:  newRestyBaseClient(cfg),
		baseURL: cfg.BaseURL,
		timeout: cfg.Timeout,
	}
	c.call = LogErrors(log)(Chain(c.send, mws...))
	return c
}

// newRestyBaseClient creates a resty.Client with the base URL and timeout applied and retries disabled.
func newRestyBaseClient(cfg ClientConfig) *resty.Client {
	c := resty.New()
	c.SetBaseURL(cfg.BaseURL)
	c.SetTimeout(cfg.Timeout)
	c.SetRetryCount(0)
	c.SetHeader("Accept", "application/json")
	return c
}

func normalizeConfig(cfg ClientConfig) ClientConfig {
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return cfg
}

// BaseURL returns the effective base URL every path is resolved against.
func (c *Client) BaseURL() string { return c.baseURL }

// Timeout returns the per-request timeout.
func (c *Client) Timeout() time.Duration { return c.timeout }

// Do performs req through the middleware chain.
func (c *Client) Do(ctx context.Context, req Request) (Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	return c.call(ctx, req)
}

// send is the innermost Call: one resty round trip, no retries.
func (c *Client) send(ctx context.Context, req Request) (Response, error) {
	method := strings.ToUpper(strings.TrimSpace(req.Method))
	if method == "" {
		method = http.MethodGet
	}

	r := c.client.R().SetContext(ctx)
	if len(req.Query) > 0 {
		r.SetQueryParams(req.Query)
	}
	if req.Body != nil {
		r.SetHeader("Content-Type", "application/json")
		r.SetBody(req.Body)
	}

	resp, err := r.Execute(method, req.Path)
	if err != nil {
		return nil, &TransportError{
			Method: method,
			URL:    c.resolve(req.Path),
			Err:    err,
		}
	}
	if !resp.IsSuccess() {
		return nil, &HTTPStatusError{
			Method:     method,
			URL:        c.resolve(req.Path),
			StatusCode: resp.StatusCode(),
			Body:       resp.Body(),
		}
	}
	return &restyResponseAdapter{resp: resp}, nil
}

func (c *Client) resolve(path string) string {
	return strings.TrimRight(c.baseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

// restyResponseAdapter adapts resty.Response to the httpclient.Response interface.
type restyResponseAdapter struct {
	resp *resty.Response
}

func (r *restyResponseAdapter) Body() []byte    { return r.resp.Body() }
func (r *restyResponseAdapter) StatusCode() int { return r.resp.StatusCode() }
