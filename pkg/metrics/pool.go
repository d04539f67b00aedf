package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// ConnStats is satisfied by *pgxpool.Stat.
type ConnStats interface {
	AcquiredConns() int32
	IdleConns() int32
	MaxConns() int32
}

// RegisterPoolStats exposes connection gauges of one store target. stat is
// called on every scrape.
func RegisterPoolStats(target string, stat func() ConnStats) error {
	gauge := func(name, help string, value func(ConnStats) int32) prometheus.Collector {
		return prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace:   "payments",
				Subsystem:   "db_pool",
				Name:        name,
				Help:        help,
				ConstLabels: prometheus.Labels{"target": target},
			},
			func() float64 { return float64(value(stat())) },
		)
	}

	collectors := []prometheus.Collector{
		gauge("acquired_conns", "Connections currently in use", ConnStats.AcquiredConns),
		gauge("idle_conns", "Idle connections", ConnStats.IdleConns),
		gauge("max_conns", "Maximum pool size", ConnStats.MaxConns),
	}

	for _, c := range collectors {
		if err := Registry.Register(c); err != nil {
			return err
		}
	}
	return nil
}
