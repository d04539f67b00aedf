// Package health serves liveness and readiness probes.
package health

import (
	"context"
	"time"
)

// DefaultTimeout bounds one readiness probe across all checkers.
const DefaultTimeout = 3 * time.Second

type Status string

const (
	StatusUp   Status = "up"
	StatusDown Status = "down"
)

type Result struct {
	Status  Status
	Message string
}

// Checker probes one dependency. Check must honour ctx cancellation.
type Checker interface {
	Name() string
	Check(ctx context.Context) Result
}
