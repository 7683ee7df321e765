package driver

import "time"

type DriverDB struct {
	ID          int64
	Name        string
	Phone       string
	VehicleType string
	CurrentCity string
	IsActive    bool
	Status      string
	UpdatedAt   time.Time
}
