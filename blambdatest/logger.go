package blambdatest

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// NewObservedLogger returns a logger that records every entry in memory
// together with the observed log store and the atomic level controlling it.
// Use it to assert on the records middleware emits.
func NewObservedLogger(lvl zapcore.Level) (*zap.Logger, *observer.ObservedLogs, zap.AtomicLevel) {
	level := zap.NewAtomicLevelAt(lvl)
	core, logs := observer.New(level)
	return zap.New(core), logs, level
}
