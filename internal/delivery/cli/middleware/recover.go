package middleware

import (
	"context"

	"go.uber.org/zap"

	"employee-tracker/internal/delivery/cli/router"
)

// Recover logs a failed or panicking action and swallows the failure so the
// menu comes back. Cancellation of the session context is passed through.
func Recover(log *zap.Logger) router.Middleware {
	return func(label string, next router.HandlerFunc) router.HandlerFunc {
		return func(ctx context.Context) (err error) {
			defer func() {
				if p := recover(); p != nil {
					log.Error("action panicked",
						zap.String("action", label),
						zap.Any("panic", p),
						zap.Stack("stack"),
					)
					err = ctx.Err()
				}
			}()

			if err := next(ctx); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				log.Error("action failed", zap.String("action", label), zap.Error(err))
			}
			return nil
		}
	}
}
