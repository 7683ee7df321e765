package ping_get

import (
	"net/http"

	"delivery-service/internal/generated/dto"
	"delivery-service/internal/handlers/rest/response"
	"delivery-service/pkg/logger"
)

const pong = "pong"

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	handlerLog := log.With()

	return &Handler{
		log: handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	message := pong
	err := response.JSON(w, http.StatusOK, dto.PingResponse{Message: &message})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
