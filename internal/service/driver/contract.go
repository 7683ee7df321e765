//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_test
package driver

import (
	"context"
	"time"

	"delivery-service/internal/entities"
)

type Repository interface {
	// ClaimAvailableByCity одним запросом выбирает и помечает BUSY первого свободного водителя города.
	ClaimAvailableByCity(ctx context.Context, city string) (*entities.Driver, error)
	UpdateStatus(ctx context.Context, id int64, status entities.DriverStatus) (*entities.Driver, error)
	ReleaseOrphaned(ctx context.Context, idleSince time.Time) (int64, error)
}
