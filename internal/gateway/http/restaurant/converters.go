package restaurant

import "delivery-service/internal/entities"

func toDomain(resp *restaurantResponse, requestedID string) *entities.Restaurant {
	id := resp.ID.String()
	if id == "" {
		id = resp.RestaurantID.String()
	}
	if id == "" {
		id = requestedID
	}

	return &entities.Restaurant{
		ID:     id,
		Name:   resp.Name,
		IsOpen: resp.IsOpen,
		City:   resp.City,
	}
}
