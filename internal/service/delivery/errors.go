package delivery

import "errors"

var (
	ErrInvalidOrderID    = errors.New("invalid order id")
	ErrInvalidDeliveryID = errors.New("invalid delivery id")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidTransition = errors.New("invalid status transition")

	ErrOrderNotFound         = errors.New("order not found")
	ErrRestaurantNotFound    = errors.New("restaurant not found")
	ErrRestaurantUnavailable = errors.New("restaurant unavailable")
	ErrDeliveryNotFound      = errors.New("delivery not found")

	ErrDuplicateDelivery = errors.New("delivery already exists for order")
	ErrNoDriverAvailable = errors.New("no driver available")

	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
)
