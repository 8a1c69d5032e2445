package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/xraph/portal/call"
)

// Logging returns middleware that logs dispatch start and completion.
func Logging(logger *slog.Logger) Middleware {
	return func(ctx context.Context, c *call.Call, next Handler) (any, error) {
		logger.Info("dispatch started",
			slog.String("operation", c.Operation.String()),
			slog.String("factory", c.Factory),
			slog.String("method", c.Method),
		)

		start := time.Now()
		result, err := next(ctx)
		elapsed := time.Since(start)

		if err != nil {
			logger.Error("dispatch failed",
				slog.String("operation", c.Operation.String()),
				slog.String("factory", c.Factory),
				slog.String("method", c.Method),
				slog.Duration("elapsed", elapsed),
				slog.String("error", err.Error()),
			)
		} else {
			logger.Info("dispatch completed",
				slog.String("operation", c.Operation.String()),
				slog.String("factory", c.Factory),
				slog.String("method", c.Method),
				slog.Duration("elapsed", elapsed),
			)
		}

		return result, err
	}
}
