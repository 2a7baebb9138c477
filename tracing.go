package blambda

import (
	"context"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/advdv/blambda"

// WithTracing starts one span per invocation, named after the invoked
// function. Handler failures are recorded on the span and mark it with error
// status. The TracerProvider is explicitly injected to avoid global state.
func WithTracing(tp trace.TracerProvider) Middleware {
	tracer := tp.Tracer(tracerName)

	return func(next Handler) Handler {
		return HandlerFunc(func(ctx context.Context, evt Event) (Response, error) {
			ctx, span := tracer.Start(ctx, handlerName(ctx))
			defer span.End()

			resp, err := next.HandleEvent(ctx, evt)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			}

			return resp, err
		})
	}
}
