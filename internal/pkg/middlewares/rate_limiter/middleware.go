package rate_limiter

import (
	"net/http"
	"strconv"

	"delivery-service/internal/handlers/rest/response"
	"delivery-service/internal/pkg/middlewares/metrics"
	"delivery-service/internal/pkg/middlewares/request_id"
	"delivery-service/pkg/logger"
)

const exceededMessage = "Rate limit exceeded. Try again later."

// Middleware отклоняет запрос с 429, если в корзине limiter нет токенов. qps уходит клиенту в X-RateLimit-Limit.
func Middleware(log handlerLogger, qps int, limiter Limiter) func(http.Handler) http.Handler {
	limit := strconv.Itoa(qps)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			route := metrics.RouteTemplate(r)
			RateLimitExceededTotal.WithLabelValues(r.Method, route).Inc()

			log.With(
				logger.NewField("request_id", request_id.FromContext(r.Context())),
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("remote_addr", r.RemoteAddr),
			).Warn("rate limit exceeded")

			w.Header().Set("X-RateLimit-Limit", limit)
			w.Header().Set("Retry-After", "1")
			err := response.Error(w, http.StatusTooManyRequests, exceededMessage)
			if err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Error("failed to write rate limit response")
			}
		})
	}
}
