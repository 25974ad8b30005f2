package exreport

import (
	"io"
	"log/slog"
)

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger used for build progress. The default discards
// everything.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithStyle registers or replaces a named style preset.
func WithStyle(name string, st Style) Option {
	return func(b *Builder) {
		b.styles.presets[name] = st
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
