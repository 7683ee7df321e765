package order

import (
	"strings"

	"delivery-service/internal/entities"
)

func toDomain(resp *orderResponse, requestedID string) *entities.Order {
	id := resp.ID.String()
	if id == "" {
		id = resp.OrderID.String()
	}
	if id == "" {
		id = requestedID
	}

	return &entities.Order{
		ID:            id,
		RestaurantID:  resp.RestaurantID.String(),
		PaymentStatus: entities.PaymentStatus(strings.ToUpper(strings.TrimSpace(resp.PaymentStatus))),
	}
}
