package app

import (
	"context"
	"net/http"
	"time"

	"delivery-service/internal/gateway/http/client"
	orderGateway "delivery-service/internal/gateway/http/order"
	restaurantGateway "delivery-service/internal/gateway/http/restaurant"
	"delivery-service/internal/handlers/tasks/driver_release"
	"delivery-service/internal/handlers/tasks/payment_reconcile"
	"delivery-service/internal/pkg/config"
	deliveryRepo "delivery-service/internal/repository/delivery"
	driverRepo "delivery-service/internal/repository/driver"
	deliveryService "delivery-service/internal/service/delivery"
	driverService "delivery-service/internal/service/driver"
	"delivery-service/pkg/background"
	"delivery-service/pkg/logger"
	"delivery-service/pkg/querier"
	"delivery-service/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	OrphanDriversInterval    time.Duration
	PaymentReconcileInterval time.Duration
)

func provideTxManager(pool *pgxpool.Pool, cfg *config.Config) *tx.Manager {
	return tx.New(pool, tx.WithTimeout(cfg.Delivery.StoreTimeout))
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideDriverRepository(querier *querier.Querier) *driverRepo.Repository {
	return driverRepo.New(querier)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func provideServiceDriver(repository driverService.Repository) *driverService.Driver {
	return driverService.New(repository)
}

func provideOrderGateway(cfg *config.Config, httpClient *http.Client, log logger.Logger) *orderGateway.OrderGateway {
	c := client.New(
		client.Config{Service: orderGateway.ServiceName, BaseURL: cfg.Gateways.OrderServiceURL},
		httpClient,
		log,
	)
	return orderGateway.New(c)
}

func provideRestaurantGateway(cfg *config.Config, httpClient *http.Client, log logger.Logger) *restaurantGateway.RestaurantGateway {
	c := client.New(
		client.Config{Service: restaurantGateway.ServiceName, BaseURL: cfg.Gateways.RestaurantServiceURL},
		httpClient,
		log,
	)
	return restaurantGateway.New(c)
}

func provideDeliveryConfig(cfg *config.Config) deliveryService.Config {
	return deliveryService.Config{
		DefaultCity:       cfg.Delivery.DefaultCity,
		RemoteCallTimeout: cfg.Gateways.RemoteCallTimeout,
		StoreTimeout:      cfg.Delivery.StoreTimeout,
		OrphanGrace:       cfg.Tasks.OrphanDriversGrace,
		ReconcileBatch:    cfg.Tasks.PaymentReconcileBatch,
		ReconcileGrace:    cfg.Tasks.PaymentReconcileGrace,
	}
}

func provideServiceDelivery(
	log logger.Logger,
	repository deliveryService.Repository,
	driverService deliveryService.DriverService,
	orderGateway deliveryService.OrderGateway,
	restaurantGateway deliveryService.RestaurantGateway,
	txManager deliveryService.TxManager,
	cfg deliveryService.Config,
) *deliveryService.Delivery {
	return deliveryService.New(
		log,
		repository,
		driverService,
		orderGateway,
		restaurantGateway,
		txManager,
		cfg,
	)
}

func provideOrphanDriversInterval(cfg *config.Config) OrphanDriversInterval {
	return OrphanDriversInterval(cfg.Tasks.OrphanDriversInterval)
}

func providePaymentReconcileInterval(cfg *config.Config) PaymentReconcileInterval {
	return PaymentReconcileInterval(cfg.Tasks.PaymentReconcileInterval)
}

func provideDriverReleaseTask(
	log logger.Logger,
	service driver_release.Service,
	interval OrphanDriversInterval,
) *driver_release.DriverRelease {
	return driver_release.NewDriverRelease(log, service, time.Duration(interval))
}

func providePaymentReconcileTask(
	log logger.Logger,
	service payment_reconcile.Service,
	interval PaymentReconcileInterval,
) *payment_reconcile.PaymentReconcile {
	return payment_reconcile.NewPaymentReconcile(log, service, time.Duration(interval))
}

func provideTaskList(
	driverReleaseTask *driver_release.DriverRelease,
	paymentReconcileTask *payment_reconcile.PaymentReconcile,
) []background.Task {
	return []background.Task{
		driverReleaseTask,
		paymentReconcileTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
