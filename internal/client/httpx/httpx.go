// Package httpx implements the outbound HTTP pipeline of the portal client:
// an ordered middleware chain applied to every request (CSRF attachment,
// tunnel credentials, request correlation, error normalization and
// 401-triggered refresh-and-replay) plus a small JSON convenience client.
//
// Conceptual order, outermost first:
//
//	auth gate → CSRF → tunnel bypass → request id → normalization → transport
//
// Normalization sits closest to the transport so that every stage above it,
// the auth gate in particular, only ever sees *apperr.Error values.
package httpx

import "net/http"

// Doer executes a single HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// DoerFunc adapts a function to the Doer interface.
type DoerFunc func(req *http.Request) (*http.Response, error)

func (f DoerFunc) Do(req *http.Request) (*http.Response, error) { return f(req) }

// Middleware wraps a Doer with one request/response transformation.
type Middleware func(next Doer) Doer

// Chain applies middlewares to base. The first middleware is outermost: it
// sees the request first and the response (or error) last.
func Chain(base Doer, mw ...Middleware) Doer {
	d := base
	for i := len(mw) - 1; i >= 0; i-- {
		d = mw[i](d)
	}
	return d
}
