package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext returns the logger stored in ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext stores logger in ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent tags the context logger with the emitting component
// ("omnibox", "suggest").
func WithComponent(ctx context.Context, component string) context.Context {
	return with(ctx, func(c zerolog.Context) zerolog.Context {
		return c.Str("component", component)
	})
}

// WithURL tags the context logger with the URL being opened.
func WithURL(ctx context.Context, url string) context.Context {
	return with(ctx, func(c zerolog.Context) zerolog.Context {
		return c.Str("url", url)
	})
}

// WithEpoch tags the context logger with a suggestion request epoch.
func WithEpoch(ctx context.Context, epoch uint64) context.Context {
	return with(ctx, func(c zerolog.Context) zerolog.Context {
		return c.Uint64("epoch", epoch)
	})
}

func with(ctx context.Context, fields func(zerolog.Context) zerolog.Context) context.Context {
	return WithContext(ctx, fields(FromContext(ctx).With()).Logger())
}
