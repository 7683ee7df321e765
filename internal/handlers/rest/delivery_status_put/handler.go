package delivery_status_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"delivery-service/internal/generated/dto"
	"delivery-service/internal/handlers/rest/response"
	"delivery-service/internal/service/delivery"
	"delivery-service/pkg/logger"
)

const (
	msgUpdated           = "Delivery status updated"
	msgRequired          = "delivery_id and status are required"
	msgInvalidStatus     = "Invalid status. Must be one of ASSIGNED, PICKED, DELIVERED"
	msgInvalidTransition = "Status transition is not allowed"
	msgNotFound          = "Delivery not found"

	warnDriverRelease = "driver was not released"
	warnPaymentSync   = "payment status was not synced with order service"
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
	var request dto.UpdateDeliveryStatusRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil || strings.TrimSpace(request.Status) == "" {
		h.writeError(w, http.StatusBadRequest, msgRequired)
		return
	}

	update, err := h.service.UpdateDeliveryStatus(r.Context(), request.DeliveryID, request.Status)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidDeliveryID):
			h.writeError(w, http.StatusBadRequest, msgRequired)
		case errors.Is(err, delivery.ErrInvalidStatus):
			h.writeError(w, http.StatusBadRequest, msgInvalidStatus)
		case errors.Is(err, delivery.ErrInvalidTransition):
			h.writeError(w, http.StatusBadRequest, msgInvalidTransition)
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			h.writeError(w, http.StatusNotFound, msgNotFound)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("update delivery status")
			if err := response.InternalError(w); err != nil {
				h.log.With(
					logger.NewField("error", err),
				).Error("encode JSON response")
			}
		}
		return
	}

	res := dto.UpdateDeliveryStatusResponse{
		Message:  msgUpdated,
		Delivery: response.DeliveryToDTO(&update.Delivery),
	}

	// Статус уже сохранен, сбои побочных шагов только сообщаем
	var warnings []string
	if update.DriverRelease.Failed() {
		warnings = append(warnings, warnDriverRelease)
	}
	if update.PaymentSync.Failed() {
		warnings = append(warnings, warnPaymentSync)
	}
	if len(warnings) > 0 {
		res.Warnings = &warnings
	}

	err = response.JSON(w, http.StatusOK, res)
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
