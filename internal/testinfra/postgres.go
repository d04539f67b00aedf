//go:build integration

// Package testinfra starts the containers integration tests run against.
package testinfra

import (
	"context"
	"fmt"
	"time"

	"PaymentService/internal/app"
	"PaymentService/pkg/postgres"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	pgUser     = "postgres"
	pgPassword = "secret"
	pgDatabase = "payments_test"
	pgPort     = "5432/tcp"
)

// PostgresContainer is a migrated Postgres. Cluster uses the same pool for
// primary and replica.
type PostgresContainer struct {
	Container testcontainers.Container
	Cluster   *postgres.Cluster
	DSN       string
}

func dsn(host string, port nat.Port) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		pgUser, pgPassword, host, port.Port(), pgDatabase)
}

func NewPostgres(ctx context.Context) (*PostgresContainer, error) {
	req := testcontainers.ContainerRequest{
		Image: "postgres:17-alpine",
		Env: map[string]string{
			"POSTGRES_USER":     pgUser,
			"POSTGRES_PASSWORD": pgPassword,
			"POSTGRES_DB":       pgDatabase,
		},
		ExposedPorts: []string{pgPort},
		WaitingFor: wait.ForSQL(pgPort, "postgres", dsn).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx,
		testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("container host: %w", err)
	}
	port, err := container.MappedPort(ctx, pgPort)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("container port: %w", err)
	}
	url := dsn(host, port)

	if err := app.ApplyMigrations(ctx, url); err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	pg, err := postgres.New(url, postgres.MaxPoolSize(5))
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}

	return &PostgresContainer{
		Container: container,
		Cluster:   postgres.NewCluster(pg, nil),
		DSN:       url,
	}, nil
}

func (c *PostgresContainer) Cleanup(ctx context.Context) {
	if c.Cluster != nil {
		c.Cluster.Close()
	}
	if c.Container != nil {
		_ = c.Container.Terminate(ctx)
	}
}

// Truncate clears all tables between tests.
func (c *PostgresContainer) Truncate(ctx context.Context) error {
	_, err := c.Cluster.Primary().Exec(ctx,
		"TRUNCATE TABLE stripe_dispute, stripe_transfer, transfers RESTART IDENTITY")
	return err
}
