// Package blambdatest provides helpers for testing blambda middleware chains.
package blambdatest

import (
	"context"

	"github.com/cockroachdb/errors"
)

// ParameterReader is a map-backed [blambda.ParameterReader] for tests. Every
// call to ReadParameters increments Calls so tests can assert re-fetching
// behavior.
type ParameterReader struct {
	Values map[string]string
	Err    error
	Calls  int
}

// ReadParameters resolves names from the Values map, failing on the first
// name that is missing or with Err when set.
func (r *ParameterReader) ReadParameters(_ context.Context, names []string) (map[string]string, error) {
	r.Calls++

	if r.Err != nil {
		return nil, r.Err
	}

	values := make(map[string]string, len(names))
	for _, name := range names {
		value, ok := r.Values[name]
		if !ok {
			return nil, errors.Errorf("parameter %q not found", name)
		}
		values[name] = value
	}

	return values, nil
}
