package metrics

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestQueryTracer(t *testing.T) {
	tracer := NewQueryTracer(TargetReplica)

	okBefore := testutil.ToFloat64(DBQueriesTotal.WithLabelValues(TargetReplica, "ok"))
	errBefore := testutil.ToFloat64(DBQueriesTotal.WithLabelValues(TargetReplica, "error"))

	ctx := tracer.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT 1"})
	tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{})

	ctx = tracer.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT 1"})
	tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{Err: errors.New("boom")})

	assert.Equal(t, okBefore+1, testutil.ToFloat64(DBQueriesTotal.WithLabelValues(TargetReplica, "ok")))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(DBQueriesTotal.WithLabelValues(TargetReplica, "error")))
}
