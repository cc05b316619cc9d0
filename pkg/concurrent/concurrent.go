package concurrent

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Loop is a named long-running task.
type Loop struct {
	Name string
	Run  func(ctx context.Context) error
}

// RunLoops runs every loop in its own goroutine and waits for all of them.
// The first loop to fail cancels the others and its error, prefixed with the loop
// name, is returned. Loops that stop because ctx was cancelled count as clean exits.
func RunLoops(ctx context.Context, loops ...Loop) error {
	errGroup, ctx := errgroup.WithContext(ctx)

	for _, loop := range loops {
		errGroup.Go(func() error {
			err := loop.Run(ctx)
			if err == nil || errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("%s: %w", loop.Name, err)
		})
	}

	return errGroup.Wait()
}
