package restaurant

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"delivery-service/internal/entities"
	"delivery-service/internal/gateway/http/client"
	"delivery-service/internal/service/delivery"
)

const ServiceName = "restaurant-service"

type RestaurantGateway struct {
	client httpClient
}

func New(c httpClient) *RestaurantGateway {
	return &RestaurantGateway{
		client: c,
	}
}

func (r *RestaurantGateway) GetRestaurantByID(ctx context.Context, restaurantID string) (*entities.Restaurant, error) {
	var resp restaurantResponse

	err := r.client.Do(ctx, "GetRestaurantByID", http.MethodGet, "/v1/restaurants/"+url.PathEscape(restaurantID), nil, &resp)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			return nil, delivery.ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("%w: gateway restaurant, get restaurant %s: %w", delivery.ErrUpstreamUnavailable, restaurantID, err)
	}

	return toDomain(&resp, restaurantID), nil
}
