package httpclient

import "context"

// Response is a minimal HTTP response contract.
type Response interface {
	Body() []byte
	StatusCode() int
}

// Request describes a single call relative to the client's base URL.
type Request struct {
	Method string
	Path   string
	Query  map[string]string
	Body   any
}

// Call performs one request and returns the response or the failure.
type Call func(ctx context.Context, req Request) (Response, error)

// Middleware attaches behaviour to a Call and returns the wrapped Call.
type Middleware func(next Call) Call

// Requester abstracts HTTP calls so callers can inject mocks or different transports.
type Requester interface {
	Do(ctx context.Context, req Request) (Response, error)
}

// Logger defines the logging surface the client relies on.
type Logger interface {
	ErrorObj(msg, key string, obj interface{})
}

type noopLogger struct{}

func (noopLogger) ErrorObj(string, string, interface{}) {}
