// Package blambda provides composable middleware for Lambda-style handlers.
//
// # Overview
//
// Serverless functions tend to accumulate the same boilerplate: log the
// incoming event, decode a JSON body, catch failures so the runtime sees a
// normal response, fetch secrets, add CORS headers. blambda packages each of
// these as an independent [Middleware] that wraps a [Handler] and can be
// composed with [Chain].
//
// A minimal example:
//
//	env, _ := blambda.ParseEnv()
//	logs, level, _ := blambda.NewLogger(env)
//
//	handler := blambda.HandlerFunc(func(ctx context.Context, evt blambda.Event) (blambda.Response, error) {
//	    return blambda.Response{"body": "hello"}, nil
//	})
//
//	blambda.Start(blambda.Chain(handler,
//	    blambda.CatchErrors(logs),
//	    blambda.WithLogging(logs, level),
//	    blambda.CORSHeaders(),
//	    blambda.LoadJSONBody(),
//	))
//
// # Handler Signature
//
// Every middleware and every wrapped handler shares one shape:
//
//	func(ctx context.Context, evt blambda.Event) (blambda.Response, error)
//
// [Event] and [Response] are free-form maps because the payload shape belongs
// to the event source, not to this library; the middleware only interprets
// the "body" and "headers" fields.
//
// # Composition Order
//
// [Chain] follows the Gorilla and Chi convention: the middleware listed first
// is outermost and runs first on the way in, last on the way out. Order
// matters for error handling: [CatchErrors] only converts failures raised
// inside it, so list it before the middleware whose failures it should catch.
//
// # Errors
//
// Middleware failures are ordinary Go errors. The two kinds this library
// raises itself are marked with the sentinels [ErrMalformedBody] and
// [ErrParameterResolution] and can be tested with errors.Is. Without
// [CatchErrors] in the chain they propagate to the hosting runtime's own
// failure reporting.
package blambda
