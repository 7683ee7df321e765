package delivery

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"delivery-service/internal/entities"
	"delivery-service/internal/service/driver"
	"delivery-service/pkg/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const reconcileConcurrency = 4

var tracer = otel.Tracer("delivery-service/internal/service/delivery")

type Config struct {
	DefaultCity       string
	RemoteCallTimeout time.Duration
	StoreTimeout      time.Duration
	OrphanGrace       time.Duration
	ReconcileBatch    int
	// ReconcileGrace возраст DELIVERED, после которого оплату досинхронизирует фоновая задача.
	// Более свежие доставки еще обрабатывает UpdateDeliveryStatus.
	ReconcileGrace time.Duration
}

type Delivery struct {
	log               logger.Logger
	repository        Repository
	driverService     DriverService
	orderGateway      OrderGateway
	restaurantGateway RestaurantGateway
	txManager         TxManager
	cfg               Config
}

func New(
	log logger.Logger,
	repository Repository,
	driverService DriverService,
	orderGateway OrderGateway,
	restaurantGateway RestaurantGateway,
	txManager TxManager,
	cfg Config,
) *Delivery {
	return &Delivery{
		log:               log.With(logger.NewField("service", "delivery")),
		repository:        repository,
		driverService:     driverService,
		orderGateway:      orderGateway,
		restaurantGateway: restaurantGateway,
		txManager:         txManager,
		cfg:               cfg,
	}
}

// CreateDelivery создает доставку для заказа и закрепляет за ней водителя из города ресторана.
// Захват водителя и вставка доставки выполняются в одной транзакции: при любой ошибке
// водитель остается свободным.
func (d *Delivery) CreateDelivery(ctx context.Context, orderID string) (*entities.DeliveryCreation, error) {
	ctx, span := tracer.Start(ctx, "delivery.CreateDelivery", trace.WithAttributes(
		attribute.String("order.id", orderID),
	))
	defer span.End()

	creation, err := d.createDelivery(ctx, orderID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return creation, nil
}

func (d *Delivery) createDelivery(ctx context.Context, orderID string) (*entities.DeliveryCreation, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	orderID = strings.TrimSpace(orderID)

	order, err := d.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	restaurant, err := d.getRestaurant(ctx, order.RestaurantID)
	if err != nil {
		return nil, err
	}
	if !restaurant.IsOpen {
		return nil, fmt.Errorf("%w: restaurant %s is closed", ErrRestaurantUnavailable, restaurant.ID)
	}

	city := d.resolveCity(restaurant)
	paymentStatus := d.resolvePaymentStatus(order)

	storeCtx, cancel := context.WithTimeout(ctx, d.cfg.StoreTimeout)
	defer cancel()

	creation := entities.DeliveryCreation{}
	err = d.txManager.Do(storeCtx, func(ctx context.Context) error {
		exists, err := d.repository.ExistsByOrderID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("check existing delivery: %w", err)
		}
		if exists {
			return ErrDuplicateDelivery
		}

		claimed, err := d.driverService.AssignDriver(ctx, city)
		if err != nil {
			if errors.Is(err, driver.ErrNoAvailableDrivers) {
				return fmt.Errorf("%w in %s", ErrNoDriverAvailable, city)
			}
			return fmt.Errorf("assign driver: %w", err)
		}

		now := time.Now().UTC()
		status := entities.DeliveryAssigned
		deliveryModify := entities.DeliveryModify{
			OrderID:       &orderID,
			DriverID:      &claimed.ID,
			Status:        &status,
			PaymentStatus: &paymentStatus,
			AssignedAt:    &now,
			UpdatedAt:     &now,
		}

		created, err := d.repository.Create(ctx, deliveryModify)
		if err != nil {
			return fmt.Errorf("create delivery: %w", err)
		}

		creation = entities.DeliveryCreation{
			Delivery:   *created,
			Driver:     *claimed,
			Restaurant: *restaurant,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	DeliveriesCreatedTotal.Inc()
	d.log.Info("delivery created",
		logger.NewField("delivery_id", creation.Delivery.ID),
		logger.NewField("order_id", orderID),
		logger.NewField("driver_id", creation.Driver.ID),
		logger.NewField("city", city),
	)
	return &creation, nil
}

// UpdateDeliveryStatus переводит доставку строго вперед по цепочке ASSIGNED -> PICKED -> DELIVERED.
// После коммита DELIVERED освобождает водителя и синхронизирует оплату с сервисом заказов;
// сбои этих шагов возвращаются в результате, но не откатывают смену статуса.
func (d *Delivery) UpdateDeliveryStatus(ctx context.Context, deliveryID int64, status string) (*entities.DeliveryStatusUpdate, error) {
	ctx, span := tracer.Start(ctx, "delivery.UpdateDeliveryStatus", trace.WithAttributes(
		attribute.Int64("delivery.id", deliveryID),
		attribute.String("delivery.status", status),
	))
	defer span.End()

	result, err := d.updateDeliveryStatus(ctx, deliveryID, status)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return result, nil
}

func (d *Delivery) updateDeliveryStatus(ctx context.Context, deliveryID int64, status string) (*entities.DeliveryStatusUpdate, error) {
	if !isValidDeliveryID(deliveryID) {
		return nil, ErrInvalidDeliveryID
	}

	newStatus, ok := parseStatus(status)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	storeCtx, cancel := context.WithTimeout(ctx, d.cfg.StoreTimeout)
	defer cancel()

	var (
		updated    *entities.Delivery
		prevStatus entities.DeliveryStatus
	)
	err := d.txManager.Do(storeCtx, func(ctx context.Context) error {
		current, err := d.repository.GetByIDForUpdate(ctx, deliveryID)
		if err != nil {
			return fmt.Errorf("get delivery: %w", err)
		}

		if !canTransition(current.Status, newStatus) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, newStatus)
		}
		prevStatus = current.Status

		now := time.Now().UTC()
		deliveryModify := entities.DeliveryModify{
			ID:        &deliveryID,
			Status:    &newStatus,
			UpdatedAt: &now,
		}
		switch newStatus {
		case entities.DeliveryPicked:
			deliveryModify.PickedAt = &now
		case entities.DeliveryDelivered:
			deliveryModify.DeliveredAt = &now
		}

		updated, err = d.repository.Update(ctx, deliveryModify, &current.Status)
		if err != nil {
			return fmt.Errorf("update delivery status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	DeliveryStatusTransitionsTotal.WithLabelValues(prevStatus.String(), newStatus.String()).Inc()

	result := &entities.DeliveryStatusUpdate{Delivery: *updated}
	if updated.Status == entities.DeliveryDelivered {
		d.completeDelivery(ctx, result)
	}
	return result, nil
}

func (d *Delivery) ListDeliveries(ctx context.Context) ([]entities.Delivery, error) {
	ctx, cancel := context.WithTimeout(ctx, d.cfg.StoreTimeout)
	defer cancel()

	deliveries, err := d.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	return deliveries, nil
}

// ReconcilePayments досинхронизирует оплату для доставленных заказов, у которых
// она осталась PENDING после сбоя в UpdateDeliveryStatus. Возвращает число синхронизированных.
func (d *Delivery) ReconcilePayments(ctx context.Context) (int64, error) {
	storeCtx, cancel := context.WithTimeout(ctx, d.cfg.StoreTimeout)
	defer cancel()

	deliveredBefore := time.Now().UTC().Add(-d.cfg.ReconcileGrace)
	pending, err := d.repository.GetDeliveredWithPendingPayment(storeCtx, deliveredBefore, d.cfg.ReconcileBatch)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("reconcile payments timed out: %w", err)
		}
		return 0, fmt.Errorf("get pending payments: %w", err)
	}

	var synced atomic.Int64

	// Ошибка одного заказа не прерывает синхронизацию остальных.
	var g errgroup.Group
	g.SetLimit(reconcileConcurrency)
	for i := range pending {
		g.Go(func() error {
			res := d.syncPayment(ctx, &pending[i])
			if res.Failed() {
				d.log.Warn("payment reconciliation failed",
					logger.NewField("delivery_id", pending[i].ID),
					logger.NewField("order_id", pending[i].OrderID),
					logger.NewField("error", res.Err),
				)
				return fmt.Errorf("delivery %d: %w", pending[i].ID, res.Err)
			}
			synced.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		d.log.Info("payment reconciliation incomplete",
			logger.NewField("pending", len(pending)),
			logger.NewField("synced", synced.Load()),
			logger.NewField("first_error", err),
		)
	}

	PaymentsReconciledTotal.Add(float64(synced.Load()))
	return synced.Load(), nil
}

func (d *Delivery) ReleaseOrphanedDrivers(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, d.cfg.StoreTimeout)
	defer cancel()

	return d.driverService.ReleaseOrphanedDrivers(ctx, d.cfg.OrphanGrace)
}

// completeDelivery выполняет шаги после перехода в DELIVERED. Статус уже закоммичен,
// поэтому отмена запроса клиентом их не прерывает.
func (d *Delivery) completeDelivery(ctx context.Context, result *entities.DeliveryStatusUpdate) {
	ctx = context.WithoutCancel(ctx)

	log := d.log.With(
		logger.NewField("delivery_id", result.Delivery.ID),
		logger.NewField("order_id", result.Delivery.OrderID),
	)

	if result.Delivery.DriverID != nil {
		result.DriverRelease = d.releaseDriver(ctx, *result.Delivery.DriverID)
		if result.DriverRelease.Failed() {
			SideEffectFailuresTotal.WithLabelValues(effectDriverRelease).Inc()
			log.Warn("driver release failed",
				logger.NewField("driver_id", *result.Delivery.DriverID),
				logger.NewField("error", result.DriverRelease.Err),
			)
		}
	}

	if result.Delivery.PaymentStatus == entities.PaymentPending {
		result.PaymentSync = d.syncPayment(ctx, &result.Delivery)
		if result.PaymentSync.Failed() {
			SideEffectFailuresTotal.WithLabelValues(effectPaymentSync).Inc()
			log.Warn("payment status sync failed", logger.NewField("error", result.PaymentSync.Err))
		}
	}
}

func (d *Delivery) releaseDriver(ctx context.Context, driverID int64) entities.SideEffect {
	ctx, cancel := context.WithTimeout(ctx, d.cfg.StoreTimeout)
	defer cancel()

	return entities.SideEffect{
		Attempted: true,
		Err:       d.driverService.ReleaseDriver(ctx, driverID),
	}
}

// syncPayment сначала подтверждает оплату в сервисе заказов, затем отмечает ее локально.
// При успехе обновляет delivery на месте.
func (d *Delivery) syncPayment(ctx context.Context, delivery *entities.Delivery) entities.SideEffect {
	remoteCtx, cancelRemote := context.WithTimeout(ctx, d.cfg.RemoteCallTimeout)
	defer cancelRemote()

	err := d.orderGateway.SetOrderPaymentStatus(remoteCtx, delivery.OrderID, entities.PaymentSuccess)
	if err != nil {
		return entities.SideEffect{Attempted: true, Err: fmt.Errorf("set order payment status: %w", err)}
	}

	storeCtx, cancelStore := context.WithTimeout(ctx, d.cfg.StoreTimeout)
	defer cancelStore()

	now := time.Now().UTC()
	paid := entities.PaymentSuccess
	updated, err := d.repository.Update(storeCtx, entities.DeliveryModify{
		ID:            &delivery.ID,
		PaymentStatus: &paid,
		UpdatedAt:     &now,
	}, nil)
	if err != nil {
		return entities.SideEffect{Attempted: true, Err: fmt.Errorf("mark delivery payment: %w", err)}
	}

	*delivery = *updated
	return entities.SideEffect{Attempted: true}
}

func (d *Delivery) getOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, d.cfg.RemoteCallTimeout)
	defer cancel()

	order, err := d.orderGateway.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

func (d *Delivery) getRestaurant(ctx context.Context, restaurantID string) (*entities.Restaurant, error) {
	ctx, cancel := context.WithTimeout(ctx, d.cfg.RemoteCallTimeout)
	defer cancel()

	restaurant, err := d.restaurantGateway.GetRestaurantByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, ErrRestaurantNotFound) {
			return nil, fmt.Errorf("%w: restaurant %s not found", ErrRestaurantUnavailable, restaurantID)
		}
		return nil, fmt.Errorf("get restaurant: %w", err)
	}
	return restaurant, nil
}

func (d *Delivery) resolveCity(restaurant *entities.Restaurant) string {
	if city := strings.TrimSpace(restaurant.City); city != "" {
		return city
	}
	return d.cfg.DefaultCity
}

// resolvePaymentStatus пустой или неизвестный статус оплаты из сервиса заказов считается PENDING.
func (d *Delivery) resolvePaymentStatus(order *entities.Order) entities.PaymentStatus {
	switch order.PaymentStatus {
	case entities.PaymentPending, entities.PaymentSuccess:
		return order.PaymentStatus
	case "":
		return entities.DefaultPaymentStatus
	}

	d.log.Warn("unknown order payment status, using default",
		logger.NewField("order_id", order.ID),
		logger.NewField("payment_status", order.PaymentStatus.String()),
	)
	return entities.DefaultPaymentStatus
}
