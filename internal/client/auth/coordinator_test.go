package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gescomph/gescomph-portal/internal/client/models"
	"github.com/Gescomph/gescomph-portal/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// slowRunner blocks each Refresh until release is closed, counting calls.
type slowRunner struct {
	refreshes  atomic.Int32
	reloads    atomic.Int32
	release    chan struct{}
	refreshErr error
	reloadErr  error
}

func newSlowRunner() *slowRunner {
	return &slowRunner{release: make(chan struct{})}
}

func (r *slowRunner) Refresh(ctx context.Context) error {
	r.refreshes.Add(1)
	select {
	case <-r.release:
	case <-ctx.Done():
		return ctx.Err()
	}
	return r.refreshErr
}

func (r *slowRunner) ReloadMeSkipRefresh(ctx context.Context) (*models.User, error) {
	r.reloads.Add(1)
	if r.reloadErr != nil {
		return nil, r.reloadErr
	}
	return &models.User{ID: 1}, nil
}

func TestRunOrWait_SingleFlight(t *testing.T) {
	runner := newSlowRunner()
	c := NewCoordinator(runner, 0, testLogger())

	const callers = 25
	var wg sync.WaitGroup
	errs := make([]error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = c.RunOrWait(context.Background())
		}(i)
	}

	// Let the callers pile up behind the single refresh, then release it.
	require.Eventually(t, func() bool {
		return runner.refreshes.Load() == 1
	}, time.Second, time.Millisecond)
	close(runner.release)
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, int32(1), runner.refreshes.Load(), "one network refresh for the whole burst")
	assert.Equal(t, int32(1), runner.reloads.Load())
}

func TestRunOrWait_SharedFailure(t *testing.T) {
	runner := newSlowRunner()
	runner.refreshErr = errors.New("refresh: expired")
	close(runner.release)

	c := NewCoordinator(runner, 0, testLogger())

	const callers = 5
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = c.RunOrWait(context.Background())
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.ErrorIs(t, err, runner.refreshErr)
	}
	assert.Equal(t, int32(0), runner.reloads.Load(), "no rehydration after a failed refresh")
}

func TestRunOrWait_FreshCycleAfterSettlement(t *testing.T) {
	runner := newSlowRunner()
	close(runner.release)
	c := NewCoordinator(runner, 0, testLogger())

	require.NoError(t, c.RunOrWait(context.Background()))
	require.NoError(t, c.RunOrWait(context.Background()))

	assert.Equal(t, int32(2), runner.refreshes.Load(), "a call after settlement starts a new cycle")
}

func TestRunOrWait_CanceledWaiterDoesNotStopRefresh(t *testing.T) {
	runner := newSlowRunner()
	c := NewCoordinator(runner, 0, testLogger())

	// First caller starts the refresh and stays blocked.
	done := make(chan error, 1)
	go func() { done <- c.RunOrWait(context.Background()) }()
	require.Eventually(t, func() bool {
		return runner.refreshes.Load() == 1
	}, time.Second, time.Millisecond)

	// Second caller gives up; only that caller is released.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := c.RunOrWait(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	close(runner.release)
	assert.NoError(t, <-done)
	assert.Equal(t, int32(1), runner.refreshes.Load())
}

func TestRunOrWait_TimeoutBoundsRefresh(t *testing.T) {
	runner := newSlowRunner() // never released
	c := NewCoordinator(runner, 20*time.Millisecond, testLogger())

	err := c.RunOrWait(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
