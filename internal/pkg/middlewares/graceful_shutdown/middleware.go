package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"

	"delivery-service/internal/handlers/rest/response"
)

const shuttingDownMessage = "Service is shutting down"

// Middleware отвечает 503 на новые запросы, когда ongoingCtx отменен на этапе остановки.
func Middleware(draining *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-ongoingCtx.Done():
				if draining.Load() {
					w.Header().Set("Connection", "close")
					_ = response.Error(w, http.StatusServiceUnavailable, shuttingDownMessage)
					return
				}
			default:
			}
			next.ServeHTTP(w, r)
		})
	}
}
