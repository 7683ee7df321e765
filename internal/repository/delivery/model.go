package delivery

import "time"

type DeliveryDB struct {
	ID            int64
	OrderID       string
	DriverID      *int64
	Status        string
	PaymentStatus string
	AssignedAt    time.Time
	PickedAt      *time.Time
	DeliveredAt   *time.Time
	UpdatedAt     time.Time
}

type DeliveryModifyDB struct {
	ID            *int64
	OrderID       *string
	DriverID      *int64
	Status        *string
	PaymentStatus *string
	AssignedAt    *time.Time
	PickedAt      *time.Time
	DeliveredAt   *time.Time
	UpdatedAt     *time.Time
}
