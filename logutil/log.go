// Package logutil builds the zap loggers used by the Lambda function and the
// labt command-line tool.
package logutil

import (
	"context"

	"github.com/src-bin/apigateway-authorizers/contextutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LevelEnv names the environment variable the Lambda function reads its log
// level from.
const LevelEnv = "LOG_LEVEL"

// New returns a JSON production logger, or a console development logger when
// development is true. An empty level means info.
func New(level string, development bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg.DisableStacktrace = true
	}
	if level != "" {
		l, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, err
		}
		cfg.Level = zap.NewAtomicLevelAt(l)
	}
	return cfg.Build()
}

// FromContext decorates log with whatever per-invocation values
// contextutil.WithValues stored in ctx.
func FromContext(ctx context.Context, log *zap.Logger) *zap.Logger {
	if log == nil {
		log = zap.NewNop()
	}
	var fields []zap.Field
	if v := contextutil.ValueString(ctx, contextutil.FunctionName); v != "" {
		fields = append(fields, zap.String("function", v))
	}
	if v := contextutil.ValueString(ctx, contextutil.EventType); v != "" {
		fields = append(fields, zap.String("eventType", v))
	}
	if v := contextutil.ValueString(ctx, contextutil.RequestId); v != "" {
		fields = append(fields, zap.String("requestId", v))
	}
	return log.With(fields...)
}
