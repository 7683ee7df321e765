package response

import (
	"encoding/json"
	"net/http"

	"delivery-service/internal/generated/dto"
)

const internalErrorMessage = "Internal server error"

func JSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

func Error(w http.ResponseWriter, status int, message string) error {
	return JSON(w, status, dto.ErrorResponse{Error: message})
}

// InternalError скрывает детали ошибки от клиента, они должны быть залогированы вызывающим.
func InternalError(w http.ResponseWriter) error {
	return Error(w, http.StatusInternalServerError, internalErrorMessage)
}
