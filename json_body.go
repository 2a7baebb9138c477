package blambda

import (
	"context"
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// ErrMalformedBody marks failures to decode a textual event body as JSON.
// Test for it with errors.Is.
var ErrMalformedBody = errors.New("malformed JSON body")

// LoadJSONBody decodes a textual "body" field before delegating. The handler
// receives a copy of the event with the body replaced by its decoded value;
// the caller's event is left untouched. An absent or already-structured body
// passes through unchanged. A body that is text but not valid JSON fails with
// [ErrMalformedBody] before the handler runs.
func LoadJSONBody() Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx context.Context, evt Event) (Response, error) {
			raw, ok := evt["body"].(string)
			if !ok {
				return next.HandleEvent(ctx, evt)
			}

			var body any
			if err := json.Unmarshal([]byte(raw), &body); err != nil {
				return nil, errors.Mark(errors.Wrap(err, "malformed JSON body"), ErrMalformedBody)
			}

			return next.HandleEvent(ctx, lo.Assign(Event{}, evt, Event{"body": body}))
		})
	}
}
