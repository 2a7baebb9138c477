package blambda

import (
	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap/zapcore"
)

// Environment holds the process configuration this library reads. The zero
// value is usable; ParseEnv fills it from the process environment.
type Environment struct {
	// LogLevel controls the verbosity of the logger built by [NewLogger].
	// [WithLogging] re-reads it on every invocation so changing LOG_LEVEL
	// between invocations takes effect without rebuilding the chain.
	LogLevel zapcore.Level `env:"LOG_LEVEL" envDefault:"info"`
}

// ParseEnv parses environment variables into an Environment.
func ParseEnv() (Environment, error) {
	var e Environment
	if err := env.Parse(&e); err != nil {
		return e, errors.Wrap(err, "failed to parse environment")
	}
	return e, nil
}
