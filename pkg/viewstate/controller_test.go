package viewstate

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/storefront/pkg/errors"
	"github.com/agentstation/storefront/pkg/logging"
)

// recorder collects observed states.
type recorder[T any] struct {
	mu     sync.Mutex
	states []State[T]
}

func (r *recorder[T]) observe(s State[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, s)
}

func (r *recorder[T]) statuses() []Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Status, len(r.states))
	for i, s := range r.states {
		out[i] = s.Status()
	}
	return out
}

func waitDone[T any](t *testing.T, c *Controller[T]) State[T] {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	state, err := c.Wait(ctx)
	require.NoError(t, err, "fetch cycle did not finish")
	return state
}

func TestStateVariants(t *testing.T) {
	var zero State[[]int]
	assert.True(t, zero.IsLoading())
	assert.Equal(t, "loading", zero.String())

	ready := Ready([]int{1, 2})
	data, ok := ready.Data()
	assert.True(t, ok)
	assert.Equal(t, []int{1, 2}, data)
	_, ok = ready.Message()
	assert.False(t, ok)

	failed := Failed[[]int]("Server error")
	msg, ok := failed.Message()
	assert.True(t, ok)
	assert.Equal(t, "Server error", msg)
	_, ok = failed.Data()
	assert.False(t, ok)
	assert.Equal(t, `error("Server error")`, failed.String())
}

func TestMountReady(t *testing.T) {
	rec := &recorder[[]string]{}
	release := make(chan struct{})

	c := Mount(context.Background(), func(ctx context.Context) ([]string, error) {
		<-release
		return []string{"a", "b"}, nil
	}, WithView[[]string]("products"), WithObserver(rec.observe))

	assert.True(t, c.State().IsLoading(), "state is Loading until the fetch resolves")
	assert.Equal(t, "products", c.View())
	assert.NotEmpty(t, c.MountID())

	close(release)
	state := waitDone(t, c)

	data, ok := state.Data()
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, data)
	assert.Equal(t, []Status{StatusLoading, StatusReady}, rec.statuses())
}

// TestMountError settles Error with the server message.
func TestMountError(t *testing.T) {
	rec := &recorder[[]string]{}

	c := Mount(context.Background(), func(ctx context.Context) ([]string, error) {
		return nil, errors.NewApplicationError("products", 500, "Server error")
	}, WithObserver(rec.observe))

	state := waitDone(t, c)
	msg, ok := state.Message()
	require.True(t, ok)
	assert.Equal(t, "Server error", msg)
	assert.Equal(t, []Status{StatusLoading, StatusError}, rec.statuses())
}

func TestUnmountDiscardsLateResult(t *testing.T) {
	rec := &recorder[int]{}
	release := make(chan struct{})

	// The loader ignores cancellation to simulate a late-resolving fetch.
	c := Mount(context.Background(), func(ctx context.Context) (int, error) {
		<-release
		return 42, nil
	}, WithObserver(rec.observe))

	c.Unmount()
	assert.False(t, c.Alive())
	close(release)

	state := waitDone(t, c)
	assert.True(t, state.IsLoading(), "no transition may be applied after unmount")
	assert.Equal(t, []Status{StatusLoading}, rec.statuses())

	c.Unmount()
}

func TestUnmountCancelsFetch(t *testing.T) {
	rec := &recorder[int]{}
	canceled := make(chan struct{})

	c := Mount(context.Background(), func(ctx context.Context) (int, error) {
		<-ctx.Done()
		close(canceled)
		return 0, ctx.Err()
	}, WithObserver(rec.observe))

	c.Unmount()

	select {
	case <-canceled:
	case <-time.After(2 * time.Second):
		t.Fatal("loader context was not canceled on unmount")
	}

	state := waitDone(t, c)
	assert.True(t, state.IsLoading())
	assert.Equal(t, []Status{StatusLoading}, rec.statuses())
}

func TestMountTimeout(t *testing.T) {
	c := Mount(context.Background(), func(ctx context.Context) (int, error) {
		<-ctx.Done()
		return 0, errors.NewNetworkError("products", "Failed to fetch products", ctx.Err())
	}, WithTimeout[int](20*time.Millisecond))

	state := waitDone(t, c)
	msg, ok := state.Message()
	require.True(t, ok)
	assert.Equal(t, "Request timed out", msg)
}

func TestWaitHonorsContext(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	c := Mount(context.Background(), func(ctx context.Context) (int, error) {
		<-release
		return 1, nil
	}, WithTimeout[int](0))
	defer c.Unmount()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	state, err := c.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.True(t, state.IsLoading())
}

func TestRemountStartsFresh(t *testing.T) {
	attempts := 0
	load := func(ctx context.Context) (int, error) {
		attempts++
		if attempts == 1 {
			return 0, errors.New("first attempt fails")
		}
		return 7, nil
	}

	first := Mount(context.Background(), load)
	state := waitDone(t, first)
	assert.Equal(t, StatusError, state.Status())
	first.Unmount()

	rec := &recorder[int]{}
	second := Mount(context.Background(), load, WithObserver(rec.observe))
	assert.NotEqual(t, first.MountID(), second.MountID())

	state = waitDone(t, second)
	data, ok := state.Data()
	require.True(t, ok)
	assert.Equal(t, 7, data)
	assert.Equal(t, []Status{StatusLoading, StatusReady}, rec.statuses())
}

// TestStateSequences checks that only [Loading, Ready] or [Loading, Error]
// are ever observed, including when unmount races the fetch.
func TestStateSequences(t *testing.T) {
	for i := 0; i < 100; i++ {
		rec := &recorder[int]{}
		fail := i%2 == 0

		c := Mount(context.Background(), func(ctx context.Context) (int, error) {
			if fail {
				return 0, errors.New("boom")
			}
			return i, nil
		}, WithObserver(rec.observe))

		if i%3 == 0 {
			c.Unmount()
		}
		waitDone(t, c)
		_ = c.State()

		got := rec.statuses()
		switch len(got) {
		case 1:
			assert.Equal(t, []Status{StatusLoading}, got)
		case 2:
			assert.Equal(t, StatusLoading, got[0])
			if fail {
				assert.Equal(t, StatusError, got[1])
			} else {
				assert.Equal(t, StatusReady, got[1])
			}
		default:
			t.Fatalf("unexpected state sequence %v", got)
		}
	}
}

func TestMountLogsViewFields(t *testing.T) {
	tl := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), tl.Logger)

	c := Mount(ctx, func(ctx context.Context) (int, error) {
		logging.FromContext(ctx).Info().Msg("loading")
		return 1, nil
	}, WithView[int]("home"))
	waitDone(t, c)

	assert.True(t, tl.Contains(`"view":"home"`))
	assert.True(t, tl.Contains(c.MountID()), "loader logs carry the mount id")
	assert.True(t, tl.Contains("View settled"))
}
