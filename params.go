package blambda

import (
	"context"
	"os"

	"github.com/cockroachdb/errors"
)

// ErrParameterResolution marks failures to resolve a named parameter from the
// backing store. Test for it with errors.Is.
var ErrParameterResolution = errors.New("parameter resolution failed")

// ParameterReader abstracts parameter retrieval for testability and
// flexibility. Implementations must return a value for every requested name
// or fail.
type ParameterReader interface {
	ReadParameters(ctx context.Context, names []string) (map[string]string, error)
}

// WithParameters resolves the named parameters through the reader on every
// invocation and exposes each as a process environment variable before
// delegating, so the handler can look values up by the same name. Values are
// deliberately re-fetched per call: a stale value silently masking a secret
// rotation is a worse failure mode than the extra lookups.
//
// An unreachable store or a name the store does not hold fails the invocation
// with an error marked [ErrParameterResolution]; there are no silent defaults.
func WithParameters(reader ParameterReader, names ...string) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx context.Context, evt Event) (Response, error) {
			if len(names) > 0 {
				values, err := reader.ReadParameters(ctx, names)
				if err != nil {
					return nil, errors.Mark(err, ErrParameterResolution)
				}

				for _, name := range names {
					value, ok := values[name]
					if !ok {
						return nil, errors.Mark(
							errors.Errorf("parameter %q not returned by store", name),
							ErrParameterResolution)
					}
					if err := os.Setenv(name, value); err != nil {
						return nil, errors.Wrapf(err, "expose parameter %q", name)
					}
				}
			}

			return next.HandleEvent(ctx, evt)
		})
	}
}
