package blambda

import (
	"context"
	"strings"
)

// corsOptions holds configuration for the CORS middleware.
type corsOptions struct {
	origin      string
	credentials bool
	headers     []string
	methods     []string
}

// CORSOption configures [CORSHeaders].
type CORSOption func(*corsOptions)

// WithOrigin sets the allowed origin. Defaults to "*".
func WithOrigin(origin string) CORSOption {
	return func(o *corsOptions) {
		o.origin = origin
	}
}

// WithCredentials adds the Access-Control-Allow-Credentials header.
func WithCredentials() CORSOption {
	return func(o *corsOptions) {
		o.credentials = true
	}
}

// WithAllowedHeaders adds the Access-Control-Allow-Headers header with the
// given header names.
func WithAllowedHeaders(names ...string) CORSOption {
	return func(o *corsOptions) {
		o.headers = names
	}
}

// WithAllowedMethods adds the Access-Control-Allow-Methods header with the
// given HTTP methods.
func WithAllowedMethods(methods ...string) CORSOption {
	return func(o *corsOptions) {
		o.methods = methods
	}
}

// CORSHeaders merges cross-origin response headers into the handler's
// response after it returns, creating the "headers" field (and the response
// itself) when absent. Injected headers are defaults, not overrides: an entry
// the handler already set is never overwritten.
func CORSHeaders(opts ...CORSOption) Middleware {
	options := corsOptions{origin: "*"}
	for _, opt := range opts {
		opt(&options)
	}

	return func(next Handler) Handler {
		return HandlerFunc(func(ctx context.Context, evt Event) (Response, error) {
			resp, err := next.HandleEvent(ctx, evt)
			if err != nil {
				return resp, err
			}
			if resp == nil {
				resp = Response{}
			}

			setDefault := headerSetter(resp)
			setDefault("Access-Control-Allow-Origin", options.origin)
			if options.credentials {
				setDefault("Access-Control-Allow-Credentials", "true")
			}
			if len(options.headers) > 0 {
				setDefault("Access-Control-Allow-Headers", strings.Join(options.headers, ","))
			}
			if len(options.methods) > 0 {
				setDefault("Access-Control-Allow-Methods", strings.Join(options.methods, ","))
			}

			return resp, nil
		})
	}
}

// headerSetter returns a set-if-absent function over the response's headers,
// creating the map when the response has none or a non-map value in its place.
// Both map shapes a handler realistically produces are supported.
func headerSetter(resp Response) func(key, value string) {
	switch h := resp["headers"].(type) {
	case map[string]string:
		return func(key, value string) {
			if _, ok := h[key]; !ok {
				h[key] = value
			}
		}
	case map[string]any:
		return func(key, value string) {
			if _, ok := h[key]; !ok {
				h[key] = value
			}
		}
	default:
		created := map[string]string{}
		resp["headers"] = created
		return func(key, value string) {
			if _, ok := created[key]; !ok {
				created[key] = value
			}
		}
	}
}
