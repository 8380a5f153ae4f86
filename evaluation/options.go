package evaluation

import "go.uber.org/zap"

// Options configure an Evaluator. Use the With... helpers; the zero
// configuration evaluates every task against data under ../data and logs
// nothing.
type Options struct {
	dataRoot string
	filter   *TaskFilter
	logger   *zap.Logger
}

func defaultOptions() *Options {
	return &Options{
		dataRoot: "../data",
		logger:   zap.NewNop(),
	}
}

// Option mutates evaluation options.
type Option func(*Options)

// WithDataRoot sets the directory holding the benchmark datasets.
func WithDataRoot(dir string) Option {
	return func(o *Options) {
		o.dataRoot = dir
	}
}

// WithFilter restricts evaluation to tasks matching the filter.
func WithFilter(filter *TaskFilter) Option {
	return func(o *Options) {
		o.filter = filter
	}
}

// WithLogger sets the logger for evaluation progress and task diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		o.logger = logger
	}
}
