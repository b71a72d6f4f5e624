package pipe

import (
	"context"
	"io"
	"log/slog"
)

type OptionKey string

const (
	DrainOptionKey  OptionKey = "drain_options"
	WorkerOptionKey OptionKey = "worker_options"
	LoggerOptionKey OptionKey = "logger_options"
)

type MaxLimitOption struct {
	Value int
}

type WorkerOptions struct {
	MaxCount MaxLimitOption
}

type DrainOptions struct {
	DrainOnCancel bool
}

func WithWorkers(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxLimitOption{Value: maxWorkers}})
}

// Workers returns the worker count stored in ctx, or defaultMaxWorkers.
func Workers(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok && options.MaxCount.Value > 0 {
		return options.MaxCount.Value
	}
	return defaultMaxWorkers
}

// WithDrainOnCancel controls whether cars still on the railway are delivered
// as stopped cars after cancellation instead of being discarded.
func WithDrainOnCancel(ctx context.Context, drain bool) context.Context {
	return context.WithValue(ctx, DrainOptionKey, DrainOptions{DrainOnCancel: drain})
}

func DrainOnCancelEnabled(ctx context.Context, defaultDrain bool) bool {
	options, ok := ctx.Value(DrainOptionKey).(DrainOptions)
	if ok {
		return options.DrainOnCancel
	}
	return defaultDrain
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, logger)
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// Logger returns the logger stored in ctx, or one that discards everything.
func Logger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(LoggerOptionKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return discard
}
