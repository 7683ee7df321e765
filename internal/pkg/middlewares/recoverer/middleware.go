package recoverer

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"delivery-service/internal/handlers/rest/response"
	"delivery-service/internal/pkg/middlewares/request_id"
	"delivery-service/pkg/logger"
)

// Middleware превращает панику обработчика в 500 и пишет стек в лог.
func Middleware(log handlerLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.With(
					logger.NewField("request_id", request_id.FromContext(r.Context())),
					logger.NewField("method", r.Method),
					logger.NewField("path", r.URL.Path),
					logger.NewField("panic", fmt.Sprint(rec)),
					logger.NewField("stack", string(debug.Stack())),
				).Error("handler panic")

				_ = response.InternalError(w)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
