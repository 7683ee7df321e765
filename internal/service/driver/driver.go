package driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"delivery-service/internal/entities"
)

type Driver struct {
	repository Repository
}

func New(repository Repository) *Driver {
	return &Driver{
		repository: repository,
	}
}

// AssignDriver захватывает одного свободного активного водителя в городе.
// Если в ctx открыта транзакция, захват выполняется в ней и откатится вместе с ней.
func (d *Driver) AssignDriver(ctx context.Context, city string) (*entities.Driver, error) {
	if !isValidCity(city) {
		return nil, ErrInvalidCity
	}

	driver, err := d.repository.ClaimAvailableByCity(ctx, normalizeCity(city))
	if err != nil {
		if errors.Is(err, ErrNoAvailableDrivers) {
			DriverClaimsTotal.WithLabelValues(resultNotFound).Inc()
			return nil, ErrNoAvailableDrivers
		}
		DriverClaimsTotal.WithLabelValues(resultError).Inc()
		return nil, fmt.Errorf("claim driver: %w", err)
	}

	DriverClaimsTotal.WithLabelValues(resultOK).Inc()
	return driver, nil
}

func (d *Driver) ReleaseDriver(ctx context.Context, driverID int64) error {
	if !isValidDriverID(driverID) {
		return ErrInvalidDriverID
	}

	_, err := d.repository.UpdateStatus(ctx, driverID, entities.DriverAvailable)
	if err != nil {
		if errors.Is(err, ErrDriverNotFound) {
			DriverReleasesTotal.WithLabelValues(resultNotFound).Inc()
			return ErrDriverNotFound
		}
		DriverReleasesTotal.WithLabelValues(resultError).Inc()
		return fmt.Errorf("release driver: %w", err)
	}

	DriverReleasesTotal.WithLabelValues(resultOK).Inc()
	return nil
}

// ReleaseOrphanedDrivers возвращает в AVAILABLE водителей, которые числятся BUSY дольше grace,
// но не привязаны ни к одной незавершённой доставке.
func (d *Driver) ReleaseOrphanedDrivers(ctx context.Context, grace time.Duration) (int64, error) {
	if grace <= 0 {
		return 0, ErrInvalidGracePeriod
	}

	released, err := d.repository.ReleaseOrphaned(ctx, time.Now().UTC().Add(-grace))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("release orphaned drivers timed out: %w", err)
		}
		return 0, fmt.Errorf("release orphaned drivers: %w", err)
	}

	OrphanedDriversReleasedTotal.Add(float64(released))
	return released, nil
}
