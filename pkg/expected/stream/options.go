package stream

import (
	"context"

	"github.com/apex/log"
)

type OptionKey string

const (
	ProcessOptionKey OptionKey = "process_options"
	WorkerOptionKey  OptionKey = "worker_options"
	LoggerOptionKey  OptionKey = "logger_options"
)

type MaxLimitOption struct {
	Value int
}

type WorkerOptions struct {
	MaxCount MaxLimitOption
}

// ProcessOptions controls what a line does with inputs still queued when
// the context is cancelled. With ProcessRemaining set, it drains them and
// reports each one as unprocessed.
type ProcessOptions struct {
	ProcessRemaining bool
}

type LoggerOptions struct {
	Logger log.Interface
}

func WithProcessOptions(ctx context.Context, processRemaining bool) context.Context {
	return context.WithValue(ctx, ProcessOptionKey, ProcessOptions{ProcessRemaining: processRemaining})
}

func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxLimitOption{Value: maxWorkers}})
}

func WithLogger(ctx context.Context, logger log.Interface) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, LoggerOptions{Logger: logger})
}

func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok && options.MaxCount.Value > 0 {
		return options.MaxCount.Value
	}
	return defaultMaxWorkers
}

func IsProcessRemainingEnabled(ctx context.Context, defaultProcessRemaining bool) bool {
	options, ok := ctx.Value(ProcessOptionKey).(ProcessOptions)
	if ok {
		return options.ProcessRemaining
	}
	return defaultProcessRemaining
}

// LoggerFrom returns the logger stored by WithLogger, or the apex/log default.
func LoggerFrom(ctx context.Context) log.Interface {
	options, ok := ctx.Value(LoggerOptionKey).(LoggerOptions)
	if ok && options.Logger != nil {
		return options.Logger
	}
	return log.Log
}
