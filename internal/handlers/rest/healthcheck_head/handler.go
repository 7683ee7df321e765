package healthcheck_head

import (
	"net/http"
	"sync/atomic"
)

// Handler readiness-проба: 503, пока сервис дренирует соединения перед остановкой.
type Handler struct {
	draining *atomic.Bool
}

func New(draining *atomic.Bool) *Handler {
	return &Handler{
		draining: draining,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.draining.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
