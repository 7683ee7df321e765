//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"
	"time"

	"delivery-service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error)
	ExistsByOrderID(ctx context.Context, orderID string) (bool, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Delivery, error)
	// Update применяет непустые поля modify. Если expectedStatus задан, строка обновится
	// только при совпадении текущего статуса.
	Update(ctx context.Context, deliveryModify entities.DeliveryModify, expectedStatus *entities.DeliveryStatus) (*entities.Delivery, error)
	GetAll(ctx context.Context) ([]entities.Delivery, error)
	GetDeliveredWithPendingPayment(ctx context.Context, deliveredBefore time.Time, limit int) ([]entities.Delivery, error)
}

type DriverService interface {
	AssignDriver(ctx context.Context, city string) (*entities.Driver, error)
	ReleaseDriver(ctx context.Context, driverID int64) error
	ReleaseOrphanedDrivers(ctx context.Context, grace time.Duration) (int64, error)
}

type OrderGateway interface {
	GetOrderByID(ctx context.Context, orderID string) (*entities.Order, error)
	SetOrderPaymentStatus(ctx context.Context, orderID string, status entities.PaymentStatus) error
}

type RestaurantGateway interface {
	GetRestaurantByID(ctx context.Context, restaurantID string) (*entities.Restaurant, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
