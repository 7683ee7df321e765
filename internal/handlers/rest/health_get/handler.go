package health_get

import (
	"context"
	"net/http"
	"time"

	"delivery-service/internal/generated/dto"
	"delivery-service/internal/handlers/rest/response"
	"delivery-service/pkg/logger"
)

const (
	statusOK   = "OK"
	statusDown = "DOWN"

	dbConnected   = "Connected"
	dbUnreachable = "Database is unreachable"
)

type Handler struct {
	log     handlerLogger
	pinger  Pinger
	timeout time.Duration
}

// New timeout ограничивает пинг хранилища.
func New(log handlerLogger, pinger Pinger, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		pinger:  pinger,
		timeout: timeout,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	status := http.StatusOK
	res := dto.HealthResponse{}

	err := h.pinger.Ping(ctx)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Warn("health check: database ping failed")

		message := dbUnreachable
		status = http.StatusInternalServerError
		res.Status = statusDown
		res.Error = &message
	} else {
		db := dbConnected
		now := time.Now().UTC()
		res.Status = statusOK
		res.Db = &db
		res.Timestamp = &now
	}

	err = response.JSON(w, status, res)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
