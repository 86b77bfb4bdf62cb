package viewstate

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/agentstation/storefront/pkg/constants"
	"github.com/agentstation/storefront/pkg/errors"
	"github.com/agentstation/storefront/pkg/logging"
)

// LoadFunc performs a view's fetch cycle. It must honor ctx cancellation.
type LoadFunc[T any] func(ctx context.Context) (T, error)

// Observer is called with every state the controller enters, in order.
// Observers run synchronously on the goroutine making the transition and
// must not call back into the controller's Unmount.
type Observer[T any] func(State[T])

// Controller runs one fetch cycle for one mounted view.
type Controller[T any] struct {
	view    string
	mountID string
	logger  *zerolog.Logger

	mu        sync.Mutex
	state     State[T]
	alive     bool
	observers []Observer[T]

	cancel context.CancelFunc
	done   chan struct{}
}

// Mount creates a controller in Loading, notifies observers, and starts the
// fetch cycle in a new goroutine.
func Mount[T any](ctx context.Context, load LoadFunc[T], opts ...Option[T]) *Controller[T] {
	cfg := &mountConfig[T]{
		view:    "view",
		timeout: constants.DefaultViewTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	c := &Controller[T]{
		view:      cfg.view,
		mountID:   uuid.NewString(),
		state:     Loading[T](),
		alive:     true,
		observers: cfg.observers,
		done:      make(chan struct{}),
	}

	ctx = logging.WithView(ctx, c.view, c.mountID)
	c.logger = logging.FromContext(ctx)

	var cycleCtx context.Context
	if cfg.timeout > 0 {
		cycleCtx, c.cancel = context.WithTimeout(ctx, cfg.timeout)
	} else {
		cycleCtx, c.cancel = context.WithCancel(ctx)
	}

	c.notify(c.state)
	c.logger.Debug().Msg("View mounted")

	go c.run(cycleCtx, load)

	return c
}

// run executes the loader and settles the state.
func (c *Controller[T]) run(ctx context.Context, load LoadFunc[T]) {
	defer close(c.done)
	defer c.cancel()

	start := time.Now()
	data, err := load(ctx)
	if err == nil {
		c.settle(Ready(data), start)
		return
	}

	message := errors.Message(err)
	if ctx.Err() == context.DeadlineExceeded && !errors.IsApplication(err) {
		message = constants.MsgTimeout
	}
	c.logger.Warn().Err(err).Msg("View fetch failed")
	c.settle(Failed[T](message), start)
}

// settle applies the cycle's final state unless the view has unmounted.
func (c *Controller[T]) settle(next State[T], start time.Time) {
	c.mu.Lock()
	if !c.alive {
		c.mu.Unlock()
		c.logger.Debug().Str("dropped", next.Status().String()).Msg("View unmounted before fetch completed")
		return
	}
	c.state = next
	observers := c.observers
	c.mu.Unlock()

	c.logger.Debug().
		Str("state", next.Status().String()).
		Dur("duration", time.Since(start)).
		Msg("View settled")

	for _, fn := range observers {
		fn(next)
	}
}

// notify sends a state to the observers.
func (c *Controller[T]) notify(s State[T]) {
	for _, fn := range c.observers {
		fn(s)
	}
}

// State returns the current state.
func (c *Controller[T]) State() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// View returns the view name the controller was mounted for.
func (c *Controller[T]) View() string {
	return c.view
}

// MountID returns the unique identifier of this mount.
func (c *Controller[T]) MountID() string {
	return c.mountID
}

// Alive reports whether the view is still mounted.
func (c *Controller[T]) Alive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.alive
}

// Unmount cancels the in-flight fetch and discards any later outcome.
// It is safe to call more than once.
func (c *Controller[T]) Unmount() {
	c.mu.Lock()
	wasAlive := c.alive
	c.alive = false
	c.mu.Unlock()

	c.cancel()
	if wasAlive {
		c.logger.Debug().Msg("View unmounted")
	}
}

// Done is closed once the fetch cycle has finished, whether it settled or
// was dropped after Unmount.
func (c *Controller[T]) Done() <-chan struct{} {
	return c.done
}

// Wait blocks until the fetch cycle finishes or ctx is done, and returns the
// state at that point.
func (c *Controller[T]) Wait(ctx context.Context) (State[T], error) {
	select {
	case <-c.done:
		return c.State(), nil
	case <-ctx.Done():
		return c.State(), ctx.Err()
	}
}
