package deliveries_get

import (
	"net/http"

	"delivery-service/internal/handlers/rest/response"
	"delivery-service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	deliveries, err := h.service.ListDeliveries(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("list deliveries")
		if err := response.InternalError(w); err != nil {
			h.log.With(
				logger.NewField("error", err),
			).Error("encode JSON response")
		}
		return
	}

	err = response.JSON(w, http.StatusOK, response.DeliveriesToDTO(deliveries))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
