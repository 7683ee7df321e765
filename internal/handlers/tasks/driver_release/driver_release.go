//go:generate mockgen -source=driver_release.go -destination=./driver_release_mocks_test.go -package=driver_release_test
package driver_release

import (
	"context"
	"time"

	"delivery-service/pkg/logger"
)

type Service interface {
	ReleaseOrphanedDrivers(ctx context.Context) (int64, error)
}

// DriverRelease периодически возвращает в пул водителей, оставшихся BUSY без активной доставки.
type DriverRelease struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewDriverRelease(log logger.Logger, service Service, interval time.Duration) *DriverRelease {
	return &DriverRelease{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (d *DriverRelease) TTL() time.Duration {
	return d.interval
}

func (d *DriverRelease) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, d.interval)
	defer cancel()

	released, err := d.service.ReleaseOrphanedDrivers(ctxWithTimeout)

	if released > 0 {
		d.log.With(
			logger.NewField("released_drivers", released),
		).Info("orphaned drivers released")
	}

	return err
}

func (d *DriverRelease) Info() string {
	return "orphaned driver release"
}
