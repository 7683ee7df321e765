package delivery_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"delivery-service/internal/generated/dto"
	"delivery-service/internal/handlers/rest/response"
	"delivery-service/internal/service/delivery"
	"delivery-service/pkg/logger"
)

const (
	msgCreated          = "Delivery created successfully"
	msgOrderIDRequired  = "order_id is required"
	msgOrderNotFound    = "Order not found"
	msgRestaurantClosed = "Restaurant is currently closed"
	msgDuplicate        = "Delivery already exists for this order"
	msgNoDrivers        = "No available drivers in the restaurant's city"
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
	var request dto.CreateDeliveryRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, msgOrderIDRequired)
		return
	}

	creation, err := h.service.CreateDelivery(r.Context(), request.OrderID.String())
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidOrderID):
			h.writeError(w, http.StatusBadRequest, msgOrderIDRequired)
		case errors.Is(err, delivery.ErrOrderNotFound):
			h.writeError(w, http.StatusNotFound, msgOrderNotFound)
		case errors.Is(err, delivery.ErrRestaurantUnavailable):
			h.writeError(w, http.StatusBadRequest, msgRestaurantClosed)
		case errors.Is(err, delivery.ErrDuplicateDelivery):
			h.writeError(w, http.StatusBadRequest, msgDuplicate)
		case errors.Is(err, delivery.ErrNoDriverAvailable):
			h.writeError(w, http.StatusBadRequest, msgNoDrivers)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("create delivery")
			h.writeInternalError(w)
		}
		return
	}

	res := dto.CreateDeliveryResponse{
		Message:    msgCreated,
		Delivery:   response.DeliveryToDTO(&creation.Delivery),
		Driver:     response.DriverToDTO(&creation.Driver),
		Restaurant: response.RestaurantToDTO(&creation.Restaurant),
	}

	err = response.JSON(w, http.StatusCreated, res)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	err := response.Error(w, status, message)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) writeInternalError(w http.ResponseWriter) {
	err := response.InternalError(w)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
