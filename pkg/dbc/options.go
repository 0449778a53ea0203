package dbc

import "log/slog"

// Option configures a Read or Write call.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sends the call's debug logging to l instead of slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
