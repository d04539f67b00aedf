package postgres

import (
	"time"

	"github.com/jackc/pgx/v5"
)

type Option func(*Postgres)

func MaxPoolSize(size int) Option {
	return func(p *Postgres) {
		if size > 0 {
			p.maxPoolSize = size
		}
	}
}

func ConnTimeout(timeout time.Duration) Option {
	return func(p *Postgres) {
		if timeout > 0 {
			p.connTimeout = timeout
		}
	}
}

// WithTracer installs a pgx query tracer on every connection of the pool.
func WithTracer(tracer pgx.QueryTracer) Option {
	return func(p *Postgres) {
		p.tracer = tracer
	}
}
