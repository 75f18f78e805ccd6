// Package logger wraps log/slog with a process-wide logger and a per-request
// logger carried in the context.
//
//	log := logger.WithCtx(r.Context())
//	log.Info("product created", "id", p.ID)
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
)

var L = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

// Setup replaces L: JSON at info level in production, text at debug level
// everywhere else.
func Setup(env string) *slog.Logger {
	L = New(os.Stdout, env)
	slog.SetDefault(L)
	return L
}

func New(w io.Writer, env string) *slog.Logger {
	switch env {
	case "production", "prod":
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

type ctxKey struct{}

// WithCtx returns the request logger stored in ctx, or L when there is none.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// InjectLogger stores log in ctx. The request log middleware calls it.
func InjectLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}
