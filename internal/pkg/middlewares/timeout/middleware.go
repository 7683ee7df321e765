package timeout

import (
	"context"
	"errors"
	"net/http"
	"time"

	"delivery-service/internal/pkg/middlewares/request_id"
	"delivery-service/pkg/logger"
)

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
}

// Middleware ограничивает время обработки запроса. Родительский контекст приходит из BaseContext сервера.
// Запросы, упершиеся в дедлайн, логируются.
func Middleware(log handlerLogger, timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			start := time.Now()
			next.ServeHTTP(w, r.WithContext(ctx))

			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				log.Warn("request deadline exceeded",
					logger.NewField("request_id", request_id.FromContext(ctx)),
					logger.NewField("method", r.Method),
					logger.NewField("path", r.URL.Path),
					logger.NewField("timeout", timeout),
					logger.NewField("elapsed", time.Since(start)),
				)
			}
		})
	}
}
