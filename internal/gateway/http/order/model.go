package order

import "delivery-service/internal/gateway/http/client"

type orderResponse struct {
	ID            client.ID `json:"id"`
	OrderID       client.ID `json:"order_id"`
	RestaurantID  client.ID `json:"restaurant_id"`
	PaymentStatus string    `json:"payment_status"`
}

type paymentStatusRequest struct {
	Status string `json:"status"`
}
