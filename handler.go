package blambda

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
)

// Event is the incoming invocation payload as deserialized by the hosting
// runtime. The shape is event-source specific; the only field this library
// interprets is "body".
type Event map[string]any

// Response is the value returned to the hosting runtime. Middleware in this
// library only ever touches the "headers" and "body" fields.
type Response map[string]any

// Handler handles a single invocation. Implementations must not retain the
// event past the call.
type Handler interface {
	HandleEvent(ctx context.Context, evt Event) (Response, error)
}

// HandlerFunc allows casting a function to an implementation of [Handler].
type HandlerFunc func(ctx context.Context, evt Event) (Response, error)

// HandleEvent implements the [Handler] interface.
func (f HandlerFunc) HandleEvent(ctx context.Context, evt Event) (Response, error) {
	return f(ctx, evt)
}

// Middleware for cross-cutting concerns around handlers.
type Middleware func(Handler) Handler

// Chain takes the inner handler h and wraps it with middleware. The order is that of the Gorilla and Chi
// router. That is: the middleware provided first is called first and is the "outer" most wrapping, the
// middleware provided last will be the "inner most" wrapping (closest to the handler).
func Chain(h Handler, m ...Middleware) Handler {
	if len(m) < 1 {
		return h
	}

	wrapped := h
	for i := len(m) - 1; i >= 0; i-- {
		wrapped = m[i](wrapped)
	}

	return wrapped
}

// Start hands the (usually chained) handler to the AWS Lambda runtime and
// blocks for the lifetime of the execution environment.
func Start(h Handler) {
	lambda.Start(func(ctx context.Context, evt Event) (Response, error) {
		return h.HandleEvent(ctx, evt)
	})
}
