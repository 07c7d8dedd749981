package kflow

import "log/slog"

type options struct {
	logger *slog.Logger
}

// Option configures a Builder and the pipelines it builds.
type Option func(*options)

// WithLogger makes pipelines log applied and failing hooks at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newOptions(opts ...Option) options {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
