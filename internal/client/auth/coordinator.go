package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Gescomph/gescomph-portal/internal/client/models"
	"github.com/Gescomph/gescomph-portal/internal/logging"
)

// refreshRunner is the slice of the Transport the coordinator drives.
type refreshRunner interface {
	Refresh(ctx context.Context) error
	ReloadMeSkipRefresh(ctx context.Context) (*models.User, error)
}

// Coordinator guarantees at most one in-flight token refresh. The first
// caller in a burst starts the network work; every concurrent caller becomes
// a waiter sharing the same outcome. All waiter state is mutated under one
// mutex inside RunOrWait and settle, so the single-flight invariant is
// structural rather than timing-dependent.
type Coordinator struct {
	runner  refreshRunner
	timeout time.Duration
	log     logging.Logger

	mu       sync.Mutex
	inFlight bool
	waiters  []chan error
}

// NewCoordinator builds a coordinator. timeout bounds the whole
// refresh-plus-rehydration sequence; zero disables the bound.
func NewCoordinator(runner refreshRunner, timeout time.Duration, log logging.Logger) *Coordinator {
	return &Coordinator{runner: runner, timeout: timeout, log: log}
}

// RunOrWait returns nil once a renewed session is confirmed, or the shared
// failure otherwise. Callers arriving while a refresh is in flight do not
// start a second one. A caller whose own context ends is released with the
// context error; the shared refresh keeps running for the remaining waiters.
func (c *Coordinator) RunOrWait(ctx context.Context) error {
	c.mu.Lock()
	ch := make(chan error, 1)
	c.waiters = append(c.waiters, ch)
	start := !c.inFlight
	c.inFlight = true
	c.mu.Unlock()

	if start {
		go c.run()
	}

	select {
	case err := <-ch:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run executes the refresh and identity rehydration, then settles every
// waiter with the single outcome. It is detached from the initiating
// caller's context: abandoning a navigation must not cancel a refresh other
// callers are waiting on.
func (c *Coordinator) run() {
	ctx := context.Background()
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	err := c.runner.Refresh(ctx)
	if err == nil {
		_, err = c.runner.ReloadMeSkipRefresh(ctx)
	}
	if err != nil {
		err = fmt.Errorf("session refresh failed: %w", err)
		c.log.Warn(ctx, "session refresh failed", "error", err)
	} else {
		c.log.Debug(ctx, "session refreshed")
	}

	c.settle(err)
}

// settle resolves or rejects every registered waiter exactly once and
// clears the pending state, unconditionally, in one mutex-guarded step.
// A RunOrWait call arriving after this starts a fresh cycle.
func (c *Coordinator) settle(err error) {
	c.mu.Lock()
	waiters := c.waiters
	c.waiters = nil
	c.inFlight = false
	c.mu.Unlock()

	for _, ch := range waiters {
		ch <- err
	}
}
