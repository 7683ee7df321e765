package entities

// Order то, что сервису доставки нужно знать о заказе из order-service.
type Order struct {
	ID            string
	RestaurantID  string
	PaymentStatus PaymentStatus // пустой, если order-service его не прислал
}
