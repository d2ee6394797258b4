package presentation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runHub(t *testing.T, ctrl *Controller) (*Hub, context.CancelFunc) {
	t.Helper()
	hub := NewHub(ctrl)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = hub.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return hub, cancel
}

func TestHub_Do(t *testing.T) {
	t.Parallel()

	hub, _ := runHub(t, NewController(tenSlides(t)))
	ctx := context.Background()

	s, err := hub.Do(ctx, func(c *Controller) { c.Previous() })
	require.NoError(t, err)
	assert.Equal(t, 9, s.Index)

	s, err = hub.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 9, s.Index)
}

func TestHub_ConcurrentEventsAreSerialized(t *testing.T) {
	t.Parallel()

	hub, _ := runHub(t, NewController(tenSlides(t)))
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := hub.Do(ctx, func(c *Controller) { c.Next() })
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	s, err := hub.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50%10, s.Index)
}

func TestHub_Subscribe(t *testing.T) {
	t.Parallel()

	hub, _ := runHub(t, NewController(tenSlides(t)))
	ctx := context.Background()

	updates, release := hub.Subscribe()
	defer release()
	assert.Equal(t, 1, hub.Subscribers())

	_, err := hub.Do(ctx, func(c *Controller) { c.GoTo(3) })
	require.NoError(t, err)

	select {
	case s := <-updates:
		assert.Equal(t, 3, s.Index)
	case <-time.After(time.Second):
		t.Fatal("no update received")
	}

	// No view change, no update.
	_, err = hub.Do(ctx, func(c *Controller) { c.GoTo(42) })
	require.NoError(t, err)
	select {
	case s := <-updates:
		t.Fatalf("unexpected update %d", s.Index)
	default:
	}
}

func TestHub_SlowSubscriberGetsLatest(t *testing.T) {
	t.Parallel()

	hub, _ := runHub(t, NewController(tenSlides(t)))
	ctx := context.Background()

	updates, release := hub.Subscribe()
	defer release()

	for i := 0; i < 3; i++ {
		_, err := hub.Do(ctx, func(c *Controller) { c.Next() })
		require.NoError(t, err)
	}

	s := <-updates
	assert.Equal(t, 3, s.Index)
}

func TestHub_ReleaseIsIdempotent(t *testing.T) {
	t.Parallel()

	hub, _ := runHub(t, NewController(tenSlides(t)))

	updates, release := hub.Subscribe()
	release()
	release()
	assert.Equal(t, 0, hub.Subscribers())

	_, open := <-updates
	assert.False(t, open)
}

func TestHub_Shutdown(t *testing.T) {
	t.Parallel()

	hub := NewHub(NewController(tenSlides(t)))
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan error, 1)
	go func() { stopped <- hub.Run(ctx) }()

	updates, release := hub.Subscribe()
	defer release()

	cancel()
	require.NoError(t, <-stopped)

	_, open := <-updates
	assert.False(t, open)

	_, err := hub.Do(context.Background(), nil)
	assert.ErrorIs(t, err, ErrHubClosed)

	late, _ := hub.Subscribe()
	_, open = <-late
	assert.False(t, open)
}

func TestHub_DoHonoursContext(t *testing.T) {
	t.Parallel()

	hub := NewHub(NewController(tenSlides(t)))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := hub.Do(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
