package blambda

import (
	"context"
	"os"
	"strings"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a zap logger configured from the environment. Uses JSON
// encoding suitable for CloudWatch. The returned atomic level is shared with
// the logger so middleware can adjust verbosity per invocation.
func NewLogger(env Environment) (*zap.Logger, zap.AtomicLevel, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(env.LogLevel)
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logs, err := cfg.Build()
	return logs, cfg.Level, err
}

// WithLogging logs every invocation before delegating: an info record naming
// the invoked function, a debug record with the process environment and an
// info record with the full event. Handler results and errors pass through
// unchanged.
//
// The LOG_LEVEL environment variable is re-read on every call and applied to
// the level, so verbosity changes take effect between invocations without
// rebuilding the chain.
func WithLogging(logs *zap.Logger, level zap.AtomicLevel) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx context.Context, evt Event) (Response, error) {
			if raw, ok := os.LookupEnv("LOG_LEVEL"); ok {
				if lvl, err := zapcore.ParseLevel(raw); err == nil {
					level.SetLevel(lvl)
				}
			}

			logs.Info("handling event", zap.String("handler", handlerName(ctx)))
			logs.Debug("environment variables", zap.Any("environment", environMap()))
			logs.Info("event", zap.Any("event", evt))

			return next.HandleEvent(ctx, evt)
		})
	}
}

// handlerName reads the invoked function's identity from the Lambda context,
// if there is one.
func handlerName(ctx context.Context) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.InvokedFunctionArn != "" {
		return lc.InvokedFunctionArn
	}
	if lambdacontext.FunctionName != "" {
		return lambdacontext.FunctionName
	}
	return "handler"
}

func environMap() map[string]string {
	return lo.SliceToMap(os.Environ(), func(kv string) (string, string) {
		k, v, _ := strings.Cut(kv, "=")
		return k, v
	})
}
