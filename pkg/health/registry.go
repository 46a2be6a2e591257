package health

import (
	"context"
	"sync"
)

// Registry is the fixed set of checkers the readiness probe runs.
type Registry struct {
	checkers []Checker
}

func NewRegistry(checkers ...Checker) *Registry {
	return &Registry{checkers: checkers}
}

// CheckResult pairs a checker's name with its probe outcome.
type CheckResult struct {
	Name    string `json:"name"`
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

// ReadinessResponse is the probe body. Status is down as soon as any
// single check is down.
type ReadinessResponse struct {
	Status Status        `json:"status"`
	Checks []CheckResult `json:"checks,omitempty"`
}

// CheckAll probes every dependency concurrently and aggregates the
// outcomes. An empty registry reports up.
func (r *Registry) CheckAll(ctx context.Context) ReadinessResponse {
	results := make([]CheckResult, len(r.checkers))

	var wg sync.WaitGroup
	for i, c := range r.checkers {
		wg.Add(1)
		go func(i int, c Checker) {
			defer wg.Done()
			outcome := c.Check(ctx)
			results[i] = CheckResult{Name: c.Name(), Status: outcome.Status, Message: outcome.Message}
		}(i, c)
	}
	wg.Wait()

	response := ReadinessResponse{Status: StatusUp, Checks: results}
	for _, res := range results {
		if res.Status == StatusDown {
			response.Status = StatusDown
			break
		}
	}
	return response
}
