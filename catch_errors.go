package blambda

import (
	"context"
	"encoding/json"
	"fmt"
	"go/token"
	"reflect"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// ErrorPayload is the structured form of a handler failure, serialized into
// the body of the response produced by [CatchErrors].
type ErrorPayload struct {
	ErrorType    string   `json:"errorType"`
	ErrorMessage string   `json:"errorMessage"`
	StackTrace   []string `json:"stackTrace"`
}

// CatchErrors turns any failure from the wrapped chain into a normal response
// whose body is a JSON-encoded [ErrorPayload]. Panics are recovered and
// treated the same way. Each failure emits exactly one error-level log record
// carrying the payload. With this middleware outermost, no failure from the
// chain reaches the hosting runtime.
func CatchErrors(logs *zap.Logger) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx context.Context, evt Event) (resp Response, _ error) {
			defer func() {
				if v := recover(); v != nil {
					resp = errorResponse(logs, errors.Errorf("recovered from panic: %v", v))
				}
			}()

			resp, err := next.HandleEvent(ctx, evt)
			if err != nil {
				return errorResponse(logs, err), nil
			}

			return resp, nil
		})
	}
}

func errorResponse(logs *zap.Logger, err error) Response {
	payload := ErrorPayload{
		ErrorType:    errorTypeName(err),
		ErrorMessage: err.Error(),
		StackTrace:   stackTrace(err),
	}

	logs.Error("unhandled handler error",
		zap.String("errorType", payload.ErrorType),
		zap.String("errorMessage", payload.ErrorMessage),
		zap.Strings("stackTrace", payload.StackTrace))

	buf, encErr := json.Marshal(payload)
	if encErr != nil {
		// the payload is three plain fields, this cannot realistically fail
		buf = []byte(`{"errorType":"Error","errorMessage":"failed to encode error payload"}`)
	}

	return Response{"body": string(buf)}
}

// errorTypeName names the failure kind after the concrete type of the root
// cause. Anonymous and unexported error types all report as "Error".
func errorTypeName(err error) string {
	t := reflect.TypeOf(errors.Cause(err))
	if t == nil {
		return "Error"
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	name := t.Name()
	if name == "" || !token.IsExported(name) {
		return "Error"
	}

	return name
}

// stackTrace renders the error's stack one frame per line, most recent call
// last. Errors without an embedded stack get one captured at the catch site.
func stackTrace(err error) []string {
	st := errors.GetReportableStackTrace(err)
	if st == nil {
		st = errors.GetReportableStackTrace(errors.WithStackDepth(err, 2))
	}
	if st == nil {
		return []string{err.Error()}
	}

	lines := make([]string, 0, len(st.Frames))
	for _, f := range st.Frames {
		lines = append(lines, fmt.Sprintf("%s (%s:%d)", f.Function, f.AbsPath, f.Lineno))
	}

	return lines
}
