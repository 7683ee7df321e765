package entities

import "time"

type Delivery struct {
	ID            int64
	OrderID       string
	DriverID      *int64
	Status        DeliveryStatus
	PaymentStatus PaymentStatus
	AssignedAt    time.Time
	PickedAt      *time.Time
	DeliveredAt   *time.Time
	UpdatedAt     time.Time
}

type DeliveryModify struct {
	ID            *int64
	OrderID       *string
	DriverID      *int64
	Status        *DeliveryStatus
	PaymentStatus *PaymentStatus
	AssignedAt    *time.Time
	PickedAt      *time.Time
	DeliveredAt   *time.Time
	UpdatedAt     *time.Time
}

type DeliveryStatus string

const (
	DeliveryAssigned  DeliveryStatus = "ASSIGNED"
	DeliveryPicked    DeliveryStatus = "PICKED"
	DeliveryDelivered DeliveryStatus = "DELIVERED"
)

func (s DeliveryStatus) String() string {
	return string(s)
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentSuccess PaymentStatus = "SUCCESS"
)

const DefaultPaymentStatus = PaymentPending

func (s PaymentStatus) String() string {
	return string(s)
}

// DeliveryCreation результат создания доставки: сама доставка и снимки водителя и ресторана на момент назначения.
type DeliveryCreation struct {
	Delivery   Delivery
	Driver     Driver
	Restaurant Restaurant
}

// SideEffect фиксирует, выполнялось ли best-effort действие и чем оно закончилось.
// Ошибка в нём не ломает основную операцию.
type SideEffect struct {
	Attempted bool
	Err       error
}

func (s SideEffect) Failed() bool {
	return s.Attempted && s.Err != nil
}

type DeliveryStatusUpdate struct {
	Delivery      Delivery
	DriverRelease SideEffect
	PaymentSync   SideEffect
}
