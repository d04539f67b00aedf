package health

import (
	"context"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PostgresChecker checks PostgreSQL connectivity of one store target.
type PostgresChecker struct {
	name string
	pool Pinger
}

// NewPostgresChecker creates a PostgreSQL health checker reported under name,
// e.g. "postgres_primary" or "postgres_replica".
func NewPostgresChecker(name string, pool Pinger) *PostgresChecker {
	return &PostgresChecker{name: name, pool: pool}
}

func (c *PostgresChecker) Name() string {
	return c.name
}

// Check pings the PostgreSQL database.
func (c *PostgresChecker) Check(ctx context.Context) Result {
	if err := c.pool.Ping(ctx); err != nil {
		return Result{Status: StatusDown, Message: err.Error()}
	}
	return Result{Status: StatusUp}
}
