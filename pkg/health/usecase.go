package health

import "context"

// Checker represents a dependency health check.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// DependencyState is one checker's outcome for the health payload.
type DependencyState struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// UseCase describes readiness and health verification.
type UseCase interface {
	// Ready returns the first failing dependency error, or nil.
	Ready(ctx context.Context) error
	// Status reports every dependency's state and overall health.
	Status(ctx context.Context) (healthy bool, deps []DependencyState)
}

type service struct {
	checkers []Checker
}

// NewService aggregates dependency checkers.
func NewService(checkers ...Checker) UseCase {
	return &service{checkers: checkers}
}

func (s *service) Ready(ctx context.Context) error {
	for _, ch := range s.checkers {
		if err := ch.Check(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) Status(ctx context.Context) (bool, []DependencyState) {
	healthy := true
	deps := make([]DependencyState, 0, len(s.checkers))
	for _, ch := range s.checkers {
		state := DependencyState{Name: ch.Name(), Status: "connected"}
		if err := ch.Check(ctx); err != nil {
			healthy = false
			state.Status = "disconnected"
			state.Error = err.Error()
		}
		deps = append(deps, state)
	}
	return healthy, deps
}
