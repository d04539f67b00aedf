package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsPgErrorUniqueViolation(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil error", err: nil, expected: false},
		{name: "plain error", err: errors.New("boom"), expected: false},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, expected: true},
		{name: "wrapped unique violation", err: fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), expected: true},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsPgErrorUniqueViolation(tc.err))
		})
	}
}

func TestNewCluster(t *testing.T) {
	t.Run("falls back to primary when replica is nil", func(t *testing.T) {
		primary := &Postgres{}
		cluster := NewCluster(primary, nil)

		assert.Same(t, primary, cluster.ReplicaPostgres())
		assert.False(t, cluster.HasDedicatedReplica())
	})

	t.Run("keeps dedicated replica", func(t *testing.T) {
		primary := &Postgres{}
		replica := &Postgres{}
		cluster := NewCluster(primary, replica)

		assert.Same(t, primary, cluster.PrimaryPostgres())
		assert.Same(t, replica, cluster.ReplicaPostgres())
		assert.True(t, cluster.HasDedicatedReplica())
	})

	t.Run("close without pools does not panic", func(t *testing.T) {
		cluster := NewCluster(&Postgres{}, &Postgres{})
		assert.NotPanics(t, cluster.Close)
	})
}
