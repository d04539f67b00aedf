package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStats struct {
	acquired, idle, max int32
}

func (s stubStats) AcquiredConns() int32 { return s.acquired }
func (s stubStats) IdleConns() int32     { return s.idle }
func (s stubStats) MaxConns() int32      { return s.max }

func TestRegisterPoolStats(t *testing.T) {
	stats := stubStats{acquired: 2, idle: 3, max: 10}
	require.NoError(t, RegisterPoolStats("pool_test", func() ConnStats { return stats }))

	count, err := testutil.GatherAndCount(Registry,
		"payments_db_pool_acquired_conns",
		"payments_db_pool_idle_conns",
		"payments_db_pool_max_conns",
	)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	t.Run("should reject registering the same target twice", func(t *testing.T) {
		assert.Error(t, RegisterPoolStats("pool_test", func() ConnStats { return stats }))
	})
}
