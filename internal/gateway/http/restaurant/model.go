package restaurant

import "delivery-service/internal/gateway/http/client"

type restaurantResponse struct {
	ID           client.ID `json:"id"`
	RestaurantID client.ID `json:"restaurant_id"`
	Name         string    `json:"name"`
	IsOpen       bool      `json:"is_open"`
	City         string    `json:"city"`
}
