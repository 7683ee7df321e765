//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"

	orderGateway "delivery-service/internal/gateway/http/order"
	restaurantGateway "delivery-service/internal/gateway/http/restaurant"
	"delivery-service/internal/handlers/rest/health_get"
	"delivery-service/internal/handlers/tasks/driver_release"
	"delivery-service/internal/handlers/tasks/payment_reconcile"
	"delivery-service/internal/pkg/config"
	deliveryRepo "delivery-service/internal/repository/delivery"
	driverRepo "delivery-service/internal/repository/driver"
	deliveryService "delivery-service/internal/service/delivery"
	driverService "delivery-service/internal/service/driver"
	"delivery-service/pkg/logger"
	"delivery-service/pkg/querier"
	"delivery-service/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	httpClient *http.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideDriverRepository,
		provideDeliveryRepository,

		provideOrderGateway,
		provideRestaurantGateway,

		provideServiceDriver,
		provideDeliveryConfig,
		provideServiceDelivery,

		provideOrphanDriversInterval,
		providePaymentReconcileInterval,
		provideDriverReleaseTask,
		providePaymentReconcileTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),
		wire.Bind(new(health_get.Pinger), new(*querier.Querier)),

		wire.Bind(new(driverService.Repository), new(*driverRepo.Repository)),
		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(deliveryService.DriverService), new(*driverService.Driver)),
		wire.Bind(new(deliveryService.OrderGateway), new(*orderGateway.OrderGateway)),
		wire.Bind(new(deliveryService.RestaurantGateway), new(*restaurantGateway.RestaurantGateway)),
		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),

		wire.Bind(new(driver_release.Service), new(*deliveryService.Delivery)),
		wire.Bind(new(payment_reconcile.Service), new(*deliveryService.Delivery)),
	)
	return &Application{}, nil
}
