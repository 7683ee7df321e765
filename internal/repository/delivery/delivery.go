package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"delivery-service/internal/entities"
	"delivery-service/internal/repository"
	"delivery-service/internal/service/delivery"

	"github.com/AlekSi/pointer"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	deliveryColumns = "delivery_id, order_id, driver_id, status, payment_status, assigned_at, picked_at, delivered_at, updated_at"

	orderIDConstraint  = "deliveries_order_id_key"
	driverIDConstraint = "deliveries_driver_id_fkey"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error) {
	deliveryModifyDB := FromDomainModify(&deliveryModify)

	query := `
		INSERT INTO deliveries (order_id, driver_id, status, payment_status, assigned_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + deliveryColumns

	var deliveryDB DeliveryDB
	err := scanDelivery(r.querier.QueryRow(
		ctx,
		query,
		deliveryModifyDB.OrderID,
		deliveryModifyDB.DriverID,
		deliveryModifyDB.Status,
		deliveryModifyDB.PaymentStatus,
		deliveryModifyDB.AssignedAt,
		deliveryModifyDB.UpdatedAt,
	), &deliveryDB)
	if err != nil {
		if repository.IsUniqueViolation(err, orderIDConstraint) {
			return nil, delivery.ErrDuplicateDelivery
		}
		if repository.IsForeignKeyViolation(err, driverIDConstraint) {
			return nil, fmt.Errorf("delivery references unknown driver %d: %w", pointer.GetInt64(deliveryModify.DriverID), err)
		}
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	return ToDomain(&deliveryDB), nil
}

func (r *Repository) ExistsByOrderID(ctx context.Context, orderID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM deliveries WHERE order_id = $1)`

	var exists bool
	err := r.querier.QueryRow(ctx, query, orderID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected delivery repository exists error: %w", err)
	}
	return exists, nil
}

// GetByIDForUpdate блокирует строку до конца транзакции из ctx.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.Delivery, error) {
	query := `SELECT ` + deliveryColumns + `
		FROM deliveries
		WHERE delivery_id = $1
		FOR UPDATE`

	var deliveryDB DeliveryDB
	err := scanDelivery(r.querier.QueryRow(ctx, query, id), &deliveryDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository get error: %w", err)
	}

	return ToDomain(&deliveryDB), nil
}

// Update обновляет только заданные поля. При expectedStatus != nil строка с другим
// статусом не обновляется и считается не найденной.
func (r *Repository) Update(ctx context.Context, deliveryModify entities.DeliveryModify, expectedStatus *entities.DeliveryStatus) (*entities.Delivery, error) {
	deliveryModifyDB := FromDomainModify(&deliveryModify)

	builder := qb.
		Update("deliveries")

	if deliveryModifyDB.Status != nil {
		builder = builder.Set("status", deliveryModifyDB.Status)
	}
	if deliveryModifyDB.PaymentStatus != nil {
		builder = builder.Set("payment_status", deliveryModifyDB.PaymentStatus)
	}
	if deliveryModifyDB.DriverID != nil {
		builder = builder.Set("driver_id", deliveryModifyDB.DriverID)
	}
	if deliveryModifyDB.PickedAt != nil {
		builder = builder.Set("picked_at", deliveryModifyDB.PickedAt)
	}
	if deliveryModifyDB.DeliveredAt != nil {
		builder = builder.Set("delivered_at", deliveryModifyDB.DeliveredAt)
	}

	if deliveryModifyDB.UpdatedAt != nil {
		builder = builder.Set("updated_at", deliveryModifyDB.UpdatedAt)
	} else {
		builder = builder.Set("updated_at", sq.Expr("NOW()"))
	}

	builder = builder.Where(sq.Eq{"delivery_id": deliveryModifyDB.ID})
	if expectedStatus != nil {
		builder = builder.Where(sq.Eq{"status": expectedStatus.String()})
	}

	query, args, err := builder.
		Suffix("RETURNING " + deliveryColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	var deliveryDB DeliveryDB
	err = scanDelivery(r.querier.QueryRow(ctx, query, args...), &deliveryDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	return ToDomain(&deliveryDB), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Delivery, error) {
	query, args, err := qb.
		Select(deliveryColumns).
		From("deliveries").
		OrderBy("assigned_at DESC", "delivery_id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository get all error: %w", err)
	}

	return r.queryDeliveries(ctx, query, args...)
}

// GetDeliveredWithPendingPayment отдает доставленные до deliveredBefore заказы с неподтвержденной оплатой,
// самые старые первыми.
func (r *Repository) GetDeliveredWithPendingPayment(
	ctx context.Context,
	deliveredBefore time.Time,
	limit int,
) ([]entities.Delivery, error) {
	query, args, err := qb.
		Select(deliveryColumns).
		From("deliveries").
		Where(sq.Eq{
			"status":         entities.DeliveryDelivered.String(),
			"payment_status": entities.PaymentPending.String(),
		}).
		Where(sq.Lt{"delivered_at": deliveredBefore}).
		OrderBy("delivered_at ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository get pending payments error: %w", err)
	}

	return r.queryDeliveries(ctx, query, args...)
}

func (r *Repository) queryDeliveries(ctx context.Context, query string, args ...any) ([]entities.Delivery, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository query error: %w", err)
	}
	defer rows.Close()

	deliveries := make([]entities.Delivery, 0)
	for rows.Next() {
		var deliveryDB DeliveryDB
		if err := scanDelivery(rows, &deliveryDB); err != nil {
			return nil, fmt.Errorf("unexpected delivery repository scan error: %w", err)
		}
		deliveries = append(deliveries, *ToDomain(&deliveryDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected delivery repository rows error: %w", err)
	}

	return deliveries, nil
}

func scanDelivery(row pgx.Row, deliveryDB *DeliveryDB) error {
	return row.Scan(
		&deliveryDB.ID,
		&deliveryDB.OrderID,
		&deliveryDB.DriverID,
		&deliveryDB.Status,
		&deliveryDB.PaymentStatus,
		&deliveryDB.AssignedAt,
		&deliveryDB.PickedAt,
		&deliveryDB.DeliveredAt,
		&deliveryDB.UpdatedAt,
	)
}
