// Package viewstate owns the loading, ready and error lifecycle of a mounted view.
//
// A Controller is created per mount, starts in Loading and runs exactly one
// fetch cycle. The cycle ends in Ready or Error, unless the view unmounts
// first, in which case the outcome is dropped and the state stays as it was.
package viewstate

import "fmt"

// Status is the active variant of a State.
type Status int

const (
	// StatusLoading means the fetch cycle has not finished.
	StatusLoading Status = iota
	// StatusReady means every required fetch succeeded.
	StatusReady
	// StatusError means a required fetch failed.
	StatusError
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusError:
		return "error"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// State is a tagged variant over Loading, Ready(data) and Error(message).
// The zero value is Loading.
type State[T any] struct {
	status  Status
	data    T
	message string
}

// Loading returns the initial state.
func Loading[T any]() State[T] {
	return State[T]{status: StatusLoading}
}

// Ready returns a ready state holding the raw fetched data.
func Ready[T any](data T) State[T] {
	return State[T]{status: StatusReady, data: data}
}

// Failed returns an error state with a user-facing message.
func Failed[T any](message string) State[T] {
	return State[T]{status: StatusError, message: message}
}

// Status returns the active variant.
func (s State[T]) Status() Status {
	return s.status
}

// IsLoading reports whether the state is Loading.
func (s State[T]) IsLoading() bool {
	return s.status == StatusLoading
}

// Data returns the ready data; ok is false for any other variant.
func (s State[T]) Data() (data T, ok bool) {
	if s.status != StatusReady {
		return data, false
	}
	return s.data, true
}

// Message returns the error message; ok is false for any other variant.
func (s State[T]) Message() (string, bool) {
	if s.status != StatusError {
		return "", false
	}
	return s.message, true
}

// String implements fmt.Stringer.
func (s State[T]) String() string {
	if s.status == StatusError {
		return fmt.Sprintf("error(%q)", s.message)
	}
	return s.status.String()
}
