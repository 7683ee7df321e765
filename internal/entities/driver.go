package entities

import "time"

type Driver struct {
	ID          int64
	Name        string
	Phone       string
	VehicleType string
	CurrentCity string
	IsActive    bool
	Status      DriverStatus
	UpdatedAt   time.Time
}

type DriverStatus string

const (
	DriverAvailable DriverStatus = "AVAILABLE"
	DriverBusy      DriverStatus = "BUSY"
)

func (s DriverStatus) String() string {
	return string(s)
}
