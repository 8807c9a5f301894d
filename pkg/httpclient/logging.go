package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
)

const (
	apiErrorMessage = "[API ERROR]"
	apiErrorKey     = "details"
)

// LogErrors returns a Middleware that logs every failed call once and hands
// the original error back to the caller untouched. Successful responses pass
// through as-is.
func LogErrors(log Logger) Middleware {
	if log == nil {
		log = noopLogger{}
	}
	return func(next Call) Call {
		return func(ctx context.Context, req Request) (Response, error) {
			resp, err := next(ctx, req)
			if err != nil {
				log.ErrorObj(apiErrorMessage, apiErrorKey, ErrorDetails(err))
			}
			return resp, err
		}
	}
}

// ErrorDetails picks what gets logged for a failure: the response payload when
// the failure carried a non-empty one, else the error message. JSON payloads are
// decoded so they land in the log as structured fields; null, false, 0 and ""
// count as empty.
func ErrorDetails(err error) any {
	if err == nil {
		return nil
	}
	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		if body := strings.TrimSpace(string(statusErr.Body)); body != "" {
			var decoded any
			if json.Unmarshal([]byte(body), &decoded) != nil {
				return body
			}
			if !isZeroPayload(decoded) {
				return decoded
			}
		}
	}
	return err.Error()
}

func isZeroPayload(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case float64:
		return t == 0
	case string:
		return t == ""
	}
	return false
}

// Chain wraps call with mws; the first middleware becomes the outermost.
func Chain(call Call, mws ...Middleware) Call {
	for i := len(mws) - 1; i >= 0; i-- {
		if mws[i] == nil {
			continue
		}
		call = mws[i](call)
	}
	return call
}
