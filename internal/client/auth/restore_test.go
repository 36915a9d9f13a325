package auth

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestore_ValidSession(t *testing.T) {
	var refreshes atomic.Int32
	tr, store, _ := newTestTransport(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/me":
			w.Write(identityJSON())
		case "/auth/refresh":
			refreshes.Add(1)
			w.Write([]byte(`{}`))
		}
	}))

	tr.Restore(context.Background(), "dashboard")

	assert.True(t, store.Authenticated())
	assert.Equal(t, int32(0), refreshes.Load(), "no refresh when the identity fetch succeeds")
}

func TestRestore_RecoversViaRefresh(t *testing.T) {
	var meCalls atomic.Int32
	tr, store, _ := newTestTransport(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/me":
			// First identity fetch fails, the post-refresh one succeeds.
			if meCalls.Add(1) == 1 {
				http.Error(w, `{"detail":"expired"}`, http.StatusUnauthorized)
				return
			}
			w.Write(identityJSON())
		case "/auth/refresh":
			w.Write([]byte(`{}`))
		}
	}))

	tr.Restore(context.Background(), "dashboard")

	assert.True(t, store.Authenticated())
	assert.Equal(t, int32(2), meCalls.Load())
}

func TestRestore_NoSessionIsSilent(t *testing.T) {
	tr, store, _ := newTestTransport(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"expired"}`, http.StatusUnauthorized)
	}))

	require.NotPanics(t, func() { tr.Restore(context.Background(), "dashboard") })
	assert.False(t, store.Authenticated())
}

func TestRestore_SkippedOnPaymentReturnRoute(t *testing.T) {
	tr, store, _ := newTestTransport(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request during payment return: %s", r.URL.Path)
	}))

	tr.Restore(context.Background(), "payment/success?ref=123")

	assert.False(t, store.Authenticated())
}
