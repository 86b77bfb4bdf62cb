package viewstate

import "time"

type mountConfig[T any] struct {
	view      string
	timeout   time.Duration
	observers []Observer[T]
}

// Option configures a Controller at mount time.
type Option[T any] func(*mountConfig[T])

// WithView names the view for logging.
func WithView[T any](name string) Option[T] {
	return func(c *mountConfig[T]) {
		if name != "" {
			c.view = name
		}
	}
}

// WithTimeout bounds the fetch cycle. Zero or negative disables the deadline.
func WithTimeout[T any](d time.Duration) Option[T] {
	return func(c *mountConfig[T]) {
		c.timeout = d
	}
}

// WithObserver registers fn to receive every state transition, starting with Loading.
func WithObserver[T any](fn Observer[T]) Option[T] {
	return func(c *mountConfig[T]) {
		if fn != nil {
			c.observers = append(c.observers, fn)
		}
	}
}
