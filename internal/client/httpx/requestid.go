package httpx

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestID stamps each attempt with a fresh correlation id. A replay after
// refresh re-enters the chain and therefore gets its own id, which keeps the
// original attempt and the replay distinguishable in backend logs.
func RequestID() Middleware {
	return func(next Doer) Doer {
		return DoerFunc(func(req *http.Request) (*http.Response, error) {
			req.Header.Set(RequestIDHeader, uuid.NewString())
			return next.Do(req)
		})
	}
}
