package views

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// firstError runs fns concurrently under a shared context. It returns the
// first error as soon as it happens, without waiting for the remaining
// functions, and cancels their context. On success it waits for all of them.
func firstError(ctx context.Context, fns ...func(context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)

	// Buffered so the first failing goroutine never blocks.
	failed := make(chan error, 1)
	for _, fn := range fns {
		g.Go(func() error {
			err := fn(gctx)
			if err != nil {
				select {
				case failed <- err:
				default:
				}
			}
			return err
		})
	}

	done := make(chan struct{})
	go func() {
		_ = g.Wait()
		close(done)
	}()

	select {
	case err := <-failed:
		return err
	case <-done:
		// A failure is always sent before its goroutine returns.
		select {
		case err := <-failed:
			return err
		default:
			return nil
		}
	}
}
