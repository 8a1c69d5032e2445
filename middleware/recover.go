package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/xraph/portal/call"
)

// Recover returns middleware that recovers from panics escaping the
// handler chain. Panics are converted to errors and logged with a stack
// trace. The dispatcher already recovers panics raised inside the target
// method itself; this guards middleware and hooks composed below it.
func Recover(logger *slog.Logger) Middleware {
	return func(ctx context.Context, c *call.Call, next Handler) (result any, retErr error) {
		defer func() {
			if r := recover(); r != nil {
				stack := string(debug.Stack())
				logger.Error("dispatch panicked",
					slog.String("factory", c.Factory),
					slog.String("method", c.Method),
					slog.Any("panic", r),
					slog.String("stack", stack),
				)
				result = nil
				retErr = fmt.Errorf("panic in %s: %v", c.Method, r)
			}
		}()
		return next(ctx)
	}
}
