package rail

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

var (
	ErrCancelled = errors.New("operation cancelled")
	ErrNotFailed = errors.New("forwarded result was not a failure")
)

type OptionKey string

const LoggerOptionKey OptionKey = "logger_options"

type LoggerOptions struct {
	Logger *zap.Logger
}

func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, LoggerOptions{Logger: logger})
}

// Logger returns the logger attached with WithLogger, or a no-op logger.
func Logger(ctx context.Context) *zap.Logger {
	options, ok := ctx.Value(LoggerOptionKey).(LoggerOptions)
	if ok && options.Logger != nil {
		return options.Logger
	}
	return zap.NewNop()
}

func traceSkip[T any](ctx context.Context, step string, input Result[T]) {
	Logger(ctx).Debug("step skipped",
		zap.String("step", step),
		zap.String("id", input.Id().String()),
		zap.Bool("cancel", input.IsCancel()),
		zap.Error(input.Err()))
}
