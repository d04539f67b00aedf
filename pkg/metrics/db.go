package metrics

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus"
)

// Store targets used as the "target" label.
const (
	TargetPrimary = "primary"
	TargetReplica = "replica"
)

var (
	DBQueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "payments",
			Subsystem: "db",
			Name:      "query_duration_seconds",
			Help:      "Database statement latency in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"target", "status"},
	)

	DBQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "payments",
			Subsystem: "db",
			Name:      "queries_total",
			Help:      "Total number of database statements",
		},
		[]string{"target", "status"},
	)
)

func init() {
	Registry.MustRegister(DBQueryDuration, DBQueriesTotal)
}

type queryStartKey struct{}

// QueryTracer is a pgx.QueryTracer recording statement metrics per store target.
type QueryTracer struct {
	target string
}

var _ pgx.QueryTracer = (*QueryTracer)(nil)

func NewQueryTracer(target string) *QueryTracer {
	return &QueryTracer{target: target}
}

func (t *QueryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, _ pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, queryStartKey{}, time.Now())
}

func (t *QueryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	status := "ok"
	if data.Err != nil {
		status = "error"
	}

	if start, ok := ctx.Value(queryStartKey{}).(time.Time); ok {
		DBQueryDuration.WithLabelValues(t.target, status).Observe(time.Since(start).Seconds())
	}
	DBQueriesTotal.WithLabelValues(t.target, status).Inc()
}
