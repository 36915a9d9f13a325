package httpx

import (
	"context"
	"errors"
	"net/http"

	"github.com/Gescomph/gescomph-portal/internal/client/apperr"
	"github.com/Gescomph/gescomph-portal/internal/logging"
)

// Refresher deduplicates concurrent refresh attempts: every caller of
// RunOrWait during one in-flight refresh shares the same outcome.
type Refresher interface {
	RunOrWait(ctx context.Context) error
}

// ExpiryEmitter broadcasts the terminal session-expired event.
type ExpiryEmitter interface {
	EmitSessionExpired()
}

// AuthGate is the outermost pipeline stage. It consumes the marker headers
// and turns a normalized 401 into either a terminal expiration broadcast or
// a refresh-then-replay cycle.
//
// The gate and the refresher reference each other at runtime (the refresh
// call itself travels through the gate, marked skip-refresh), so the
// refresher is bound after construction and must be in place before the
// first request is dispatched.
type AuthGate struct {
	events    ExpiryEmitter
	refresher Refresher
	log       logging.Logger
}

func NewAuthGate(events ExpiryEmitter, log logging.Logger) *AuthGate {
	return &AuthGate{events: events, log: log}
}

// Bind wires the refresh coordinator into the gate.
func (g *AuthGate) Bind(r Refresher) { g.refresher = r }

// Middleware returns the pipeline stage.
//
// Decision table for a request failing with normalized status 401:
//   - marked skip-refresh (it was the refresh or rehydration call itself):
//     terminal — broadcast session expired, re-raise.
//   - marked require-auth: run-or-wait on the shared refresh; on success
//     replay the original request exactly once through the stages below;
//     on failure broadcast session expired and re-raise.
//   - unmarked (public endpoints, login itself): re-raise unchanged.
func (g *AuthGate) Middleware() Middleware {
	return func(next Doer) Doer {
		return DoerFunc(func(req *http.Request) (*http.Response, error) {
			needsAuth := requiresAuth(req)
			skip := skipsRefresh(req)

			resp, err := next.Do(stripMarkers(req))
			if err == nil {
				return resp, nil
			}

			var ae *apperr.Error
			if !errors.As(err, &ae) || ae.Status != http.StatusUnauthorized {
				return nil, err
			}

			if skip {
				g.log.Warn(req.Context(), "session invalid, refresh not possible", "url", req.URL.Path)
				g.events.EmitSessionExpired()
				return nil, err
			}

			if !needsAuth || g.refresher == nil {
				return nil, err
			}

			if rerr := g.refresher.RunOrWait(req.Context()); rerr != nil {
				// A waiter released by its own context carries no session
				// verdict: the shared refresh may still succeed for the
				// remaining waiters.
				if req.Context().Err() != nil {
					return nil, rerr
				}
				g.events.EmitSessionExpired()
				return nil, rerr
			}

			replay, cerr := cloneForReplay(req)
			if cerr != nil {
				g.log.Error(req.Context(), "cannot replay request after refresh", "url", req.URL.Path, "error", cerr)
				return nil, err
			}

			g.log.Debug(req.Context(), "replaying request after refresh", "url", req.URL.Path)
			return next.Do(stripMarkers(replay))
		})
	}
}

// stripMarkers removes the marker headers from a clone of req so they never
// reach the wire.
func stripMarkers(req *http.Request) *http.Request {
	out := req.Clone(req.Context())
	out.Header.Del(RequireAuthHeader)
	out.Header.Del(SkipRefreshHeader)
	return out
}

// cloneForReplay rebuilds the request with a fresh body. The first attempt
// consumed the original body, so the replay relies on GetBody.
func cloneForReplay(req *http.Request) (*http.Request, error) {
	out := req.Clone(req.Context())
	if req.Body == nil {
		return out, nil
	}
	if req.GetBody == nil {
		return nil, errors.New("request body is not replayable")
	}
	body, err := req.GetBody()
	if err != nil {
		return nil, err
	}
	out.Body = body
	return out, nil
}
