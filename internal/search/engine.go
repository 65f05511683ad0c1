package search

import (
	"context"

	"github.com/vovakirdan/turnmaze/internal/core"
)

// Run searches grid for the cheapest path from its start cell, facing
// core.DefaultHeading, to its goal cell.
//
// An unreachable goal is reported as ErrNoPath together with a Result whose
// Status is StatusExhausted. ctx is checked once per pop; when it is done
// Run returns ctx.Err() and a Result with StatusCancelled.
func Run(ctx context.Context, grid *core.Grid, options ...Option) (Result, error) {
	stepper, err := NewStepper(grid, options...)
	if err != nil {
		return Result{}, err
	}

	for {
		select {
		case <-ctx.Done():
			stepper.cancel()
			res, _ := stepper.Result()
			return res, ctx.Err()
		default:
		}

		if snap := stepper.Step(); snap.Status.Done() {
			return stepper.Result()
		}
	}
}
