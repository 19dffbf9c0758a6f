package saga

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecute_AllStepsSucceed(t *testing.T) {
	var order []string

	s := New("test",
		Step{
			Name:       "first",
			Run:        func(ctx context.Context) error { order = append(order, "first"); return nil },
			Compensate: func(ctx context.Context) error { order = append(order, "undo-first"); return nil },
		},
		Step{
			Name: "second",
			Run:  func(ctx context.Context) error { order = append(order, "second"); return nil },
		},
	)

	err := s.Execute(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestExecute_FailureCompensatesInReverseOrder(t *testing.T) {
	var order []string
	stepErr := errors.New("third step broke")

	s := New("test",
		Step{
			Name:       "first",
			Run:        func(ctx context.Context) error { order = append(order, "first"); return nil },
			Compensate: func(ctx context.Context) error { order = append(order, "undo-first"); return nil },
		},
		Step{
			Name:       "second",
			Run:        func(ctx context.Context) error { order = append(order, "second"); return nil },
			Compensate: func(ctx context.Context) error { order = append(order, "undo-second"); return nil },
		},
		Step{
			Name: "third",
			Run:  func(ctx context.Context) error { return stepErr },
		},
	)

	err := s.Execute(context.Background())

	assert.ErrorIs(t, err, stepErr)
	assert.Equal(t, []string{"first", "second", "undo-second", "undo-first"}, order)
}

func TestExecute_ReturnsStepErrorEvenIfCompensationFails(t *testing.T) {
	stepErr := errors.New("second step broke")
	compensated := false

	s := New("test",
		Step{
			Name:       "first",
			Run:        func(ctx context.Context) error { return nil },
			Compensate: func(ctx context.Context) error { return errors.New("compensation broke") },
		},
		Step{
			Name:       "second",
			Run:        func(ctx context.Context) error { return nil },
			Compensate: func(ctx context.Context) error { compensated = true; return nil },
		},
		Step{
			Name: "third",
			Run:  func(ctx context.Context) error { return stepErr },
		},
	)

	err := s.Execute(context.Background())

	assert.ErrorIs(t, err, stepErr)
	assert.True(t, compensated, "later compensations must still run after one fails")
}

func TestExecute_CompensationSurvivesCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var compensationCtxErr error

	s := New("test",
		Step{
			Name: "first",
			Run:  func(ctx context.Context) error { return nil },
			Compensate: func(ctx context.Context) error {
				compensationCtxErr = ctx.Err()
				return nil
			},
		},
		Step{
			Name: "second",
			Run: func(ctx context.Context) error {
				cancel()
				return ctx.Err()
			},
		},
	)

	err := s.Execute(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.NoError(t, compensationCtxErr, "compensation must run on a live context after cancellation")
}

func TestExecute_NilCompensationSkipped(t *testing.T) {
	stepErr := errors.New("boom")

	s := New("test",
		Step{
			Name: "first",
			Run:  func(ctx context.Context) error { return nil },
		},
		Step{
			Name: "second",
			Run:  func(ctx context.Context) error { return stepErr },
		},
	)

	assert.ErrorIs(t, s.Execute(context.Background()), stepErr)
}
