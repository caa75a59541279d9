package fig

import "log/slog"

const (
	// DefaultContent is written to a new fig file when no content is given.
	DefaultContent = "{}"
	// DefaultFilePath is the fig file used when no path is given.
	DefaultFilePath = "fig.json"
	// DefaultIgnorePath is the ignore file used when no path is given.
	DefaultIgnorePath = ".gitignore"
)

// Option configures Setup, Load and Parse.
type Option func(*options)

type options struct {
	logger *slog.Logger
	env    Env
}

// WithLogger routes fig's informational and warning messages to l.
// Values read from the fig file are never logged, only key names.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithEnv sets the environment the loader writes to. Defaults to OSEnv.
func WithEnv(e Env) Option {
	return func(o *options) {
		o.env = e
	}
}

func newOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.env == nil {
		o.env = OSEnv{}
	}
	return o
}
