package health

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

type Registry struct {
	checkers []Checker
}

func NewRegistry(checkers ...Checker) *Registry {
	return &Registry{checkers: checkers}
}

// Add appends a checker. It is not safe to call concurrently with CheckAll.
func (r *Registry) Add(c Checker) {
	r.checkers = append(r.checkers, c)
}

type CheckResult struct {
	Name      string `json:"name"`
	Status    Status `json:"status"`
	Message   string `json:"message,omitempty"`
	LatencyMs int64  `json:"latency_ms"`
}

type ReadinessResponse struct {
	Status Status        `json:"status"`
	Checks []CheckResult `json:"checks,omitempty"`
}

// CheckAll runs every checker concurrently. Results keep registration order.
func (r *Registry) CheckAll(ctx context.Context) ReadinessResponse {
	results := make([]CheckResult, len(r.checkers))

	var g errgroup.Group
	for i, c := range r.checkers {
		g.Go(func() error {
			start := time.Now()
			res := c.Check(ctx)
			results[i] = CheckResult{
				Name:      c.Name(),
				Status:    res.Status,
				Message:   res.Message,
				LatencyMs: time.Since(start).Milliseconds(),
			}
			return nil
		})
	}
	_ = g.Wait()

	overall := StatusUp
	for _, res := range results {
		if res.Status != StatusUp {
			overall = StatusDown
			break
		}
	}

	return ReadinessResponse{Status: overall, Checks: results}
}
