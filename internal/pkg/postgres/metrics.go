package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
)

// RegisterPoolMetrics публикует статистику пула как gauge-функции.
func RegisterPoolMetrics(registerer prometheus.Registerer, pool *pgxpool.Pool) error {
	gauges := []struct {
		name  string
		help  string
		value func(*pgxpool.Stat) float64
	}{
		{"total_conns", "Connections currently in the pool", func(s *pgxpool.Stat) float64 { return float64(s.TotalConns()) }},
		{"acquired_conns", "Connections currently acquired", func(s *pgxpool.Stat) float64 { return float64(s.AcquiredConns()) }},
		{"idle_conns", "Idle connections", func(s *pgxpool.Stat) float64 { return float64(s.IdleConns()) }},
		{"max_conns", "Pool size limit", func(s *pgxpool.Stat) float64 { return float64(s.MaxConns()) }},
	}

	for _, g := range gauges {
		collector := prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace: "db",
				Subsystem: "pool",
				Name:      g.name,
				Help:      g.help,
			},
			func() float64 {
				return g.value(pool.Stat())
			},
		)
		if err := registerer.Register(collector); err != nil {
			return err
		}
	}
	return nil
}
