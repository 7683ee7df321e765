package request_id

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

const (
	Header = "X-Request-ID"

	maxLength = 128
)

type ctxKey struct{}

// Middleware берет X-Request-ID клиента или генерирует новый и возвращает его в ответе.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(Header))
			if id == "" || len(id) > maxLength {
				id = uuid.NewString()
			}

			w.Header().Set(Header, id)
			ctx := context.WithValue(r.Context(), ctxKey{}, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
