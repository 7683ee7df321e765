package driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"delivery-service/internal/entities"
	"delivery-service/internal/service/driver"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const driverColumns = "driver_id, name, phone, vehicle_type, current_city, is_active, status, updated_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// ClaimAvailableByCity выбирает и захватывает водителя одним стейтментом.
// SKIP LOCKED: конкурирующий запрос не ждет чужую блокировку, а берет следующего
// свободного водителя, поэтому один и тот же водитель не достанется двоим.
func (r *Repository) ClaimAvailableByCity(ctx context.Context, city string) (*entities.Driver, error) {
	query := `
		UPDATE drivers
		SET status = 'BUSY',
		    updated_at = NOW()
		WHERE driver_id = (
			SELECT driver_id
			FROM drivers
			WHERE LOWER(TRIM(current_city)) = LOWER(TRIM($1))
			  AND is_active
			  AND status = 'AVAILABLE'
			ORDER BY driver_id
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING ` + driverColumns

	var driverDB DriverDB
	err := scanDriver(r.querier.QueryRow(ctx, query, city), &driverDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, driver.ErrNoAvailableDrivers
		}
		return nil, fmt.Errorf("unexpected driver repository claim error: %w", err)
	}

	return ToDomain(&driverDB), nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status entities.DriverStatus) (*entities.Driver, error) {
	query, args, err := qb.
		Update("drivers").
		Set("status", status.String()).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"driver_id": id}).
		Suffix("RETURNING " + driverColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository update status error: %w", err)
	}

	var driverDB DriverDB
	err = scanDriver(r.querier.QueryRow(ctx, query, args...), &driverDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, driver.ErrDriverNotFound
		}
		return nil, fmt.Errorf("unexpected driver repository update status error: %w", err)
	}

	return ToDomain(&driverDB), nil
}

// ReleaseOrphaned освобождает BUSY водителей без незавершенной доставки,
// статус которых не менялся с idleSince. Окно нужно, чтобы не задеть водителя,
// захваченного транзакцией, которая еще не успела вставить доставку.
func (r *Repository) ReleaseOrphaned(ctx context.Context, idleSince time.Time) (int64, error) {
	query := `
		UPDATE drivers
		SET status = 'AVAILABLE',
		    updated_at = NOW()
		WHERE status = 'BUSY'
		  AND updated_at < $1
		  AND NOT EXISTS (
			SELECT 1
			FROM deliveries
			WHERE deliveries.driver_id = drivers.driver_id
			  AND deliveries.status IN ('ASSIGNED', 'PICKED')
		  )
	`

	result, err := r.querier.Exec(ctx, query, idleSince)
	if err != nil {
		return 0, fmt.Errorf("unexpected driver repository release orphaned error: %w", err)
	}

	return result.RowsAffected(), nil
}

func scanDriver(row pgx.Row, driverDB *DriverDB) error {
	return row.Scan(
		&driverDB.ID,
		&driverDB.Name,
		&driverDB.Phone,
		&driverDB.VehicleType,
		&driverDB.CurrentCity,
		&driverDB.IsActive,
		&driverDB.Status,
		&driverDB.UpdatedAt,
	)
}
