package order

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

const ServiceName = "order-service"

type OrderGateway struct {
	client httpClient
}

func New(c httpClient) *OrderGateway {
	return &OrderGateway{
		client: c,
	}
}

func (o *OrderGateway) GetOrderByID(ctx context.Context, orderID string) (*entities.Order, error) {
	var resp orderResponse

	err := o.client.Do(ctx, "GetOrderByID", http.MethodGet, "/v1/orders/"+url.PathEscape(orderID), nil, &resp)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			return nil, delivery.ErrOrderNotFound
		}
		return nil, fmt.Errorf("%w: gateway order, get order %s: %w", delivery.ErrUpstreamUnavailable, orderID, err)
	}

	if resp.RestaurantID == "" {
		return nil, fmt.Errorf("%w: gateway order, order %s has no restaurant", delivery.ErrUpstreamUnavailable, orderID)
	}

	return toDomain(&resp, orderID), nil
}

func (o *OrderGateway) SetOrderPaymentStatus(ctx context.Context, orderID string, status entities.PaymentStatus) error {
	req := paymentStatusRequest{Status: status.String()}

	err := o.client.Do(ctx, "SetOrderPaymentStatus", http.MethodPatch, "/v1/orders/"+url.PathEscape(orderID)+"/payment", req, nil)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			return fmt.Errorf("gateway order, set payment %s: %w", orderID, delivery.ErrOrderNotFound)
		}
		return fmt.Errorf("%w: gateway order, set payment %s: %w", delivery.ErrUpstreamUnavailable, orderID, err)
	}
	return nil
}
