package delivery

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	effectDriverRelease = "driver_release"
	effectPaymentSync   = "payment_sync"
)

var (
	DeliveriesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "deliveries_created_total",
			Help: "Total number of deliveries created",
		},
	)

	DeliveryStatusTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "delivery_status_transitions_total",
			Help: "Total number of applied delivery status transitions",
		},
		[]string{"from", "to"},
	)

	SideEffectFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "delivery_side_effect_failures_total",
			Help: "Best-effort side effects that failed after a delivery was completed",
		},
		[]string{"effect"},
	)

	PaymentsReconciledTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "delivery_payments_reconciled_total",
			Help: "Total number of payment statuses synced by the reconciliation task",
		},
	)
)
