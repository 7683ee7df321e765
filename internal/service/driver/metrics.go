package driver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultOK       = "ok"
	resultNotFound = "not_found"
	resultError    = "error"
)

var (
	DriverClaimsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "driver_claims_total",
			Help: "Total number of driver claim attempts by result",
		},
		[]string{"result"},
	)

	DriverReleasesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "driver_releases_total",
			Help: "Total number of driver releases by result",
		},
		[]string{"result"},
	)

	OrphanedDriversReleasedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "driver_orphaned_released_total",
			Help: "Total number of BUSY drivers released because no in-flight delivery referenced them",
		},
	)
)
