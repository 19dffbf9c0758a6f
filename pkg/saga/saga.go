package saga

import (
	"context"

	"go.uber.org/zap"
)

// Step is one stage of a multi-step operation. Compensate reverses Run and
// may be nil for steps with nothing to undo (typically the commit point).
type Step struct {
	Name       string
	Run        func(ctx context.Context) error
	Compensate func(ctx context.Context) error
}

type Saga struct {
	name  string
	steps []Step
}

func New(name string, steps ...Step) *Saga {
	return &Saga{name: name, steps: steps}
}

// Execute runs the steps in order. When a step fails, the compensations of
// all previously completed steps run in reverse order and the step's own
// error is returned. Compensations run detached from ctx's cancellation: a
// step failing because the caller went away must not strand the reversal.
// A failed compensation means value may have leaked; it is logged for
// manual reconciliation and does not stop the remaining compensations.
func (s *Saga) Execute(ctx context.Context) error {
	for i, step := range s.steps {
		if err := step.Run(ctx); err != nil {
			zap.L().Warn("saga step failed, compensating",
				zap.String("saga", s.name),
				zap.String("step", step.Name),
				zap.Error(err),
			)
			s.compensate(context.WithoutCancel(ctx), i-1)
			return err
		}
	}
	return nil
}

func (s *Saga) compensate(ctx context.Context, from int) {
	for i := from; i >= 0; i-- {
		step := s.steps[i]
		if step.Compensate == nil {
			continue
		}
		if err := step.Compensate(ctx); err != nil {
			zap.L().Error("saga compensation failed, manual reconciliation required",
				zap.String("saga", s.name),
				zap.String("step", step.Name),
				zap.Error(err),
			)
		}
	}
}
