package httpx

import "net/http"

// Marker headers set by callers and consumed (and stripped) by the auth
// gate before the request leaves the process.
const (
	// RequireAuthHeader marks a request as needing an authenticated session.
	// A 401 on such a request triggers a refresh attempt.
	RequireAuthHeader = "X-Require-Auth"

	// SkipRefreshHeader marks a request that must never trigger a refresh on
	// 401: the refresh call itself and the post-refresh identity reload.
	// Prevents infinite refresh loops.
	SkipRefreshHeader = "X-Skip-Refresh"
)

// CSRF cookie/header pair expected by the backend.
const (
	CSRFCookieName = "XSRF-TOKEN"
	CSRFHeaderName = "X-XSRF-TOKEN"
)

// RequestIDHeader carries a client-generated correlation id per attempt.
const RequestIDHeader = "X-Request-Id"

// MarkRequireAuth flags req as requiring an authenticated session.
func MarkRequireAuth(req *http.Request) {
	req.Header.Set(RequireAuthHeader, "1")
}

// MarkSkipRefresh flags req as exempt from 401-triggered refresh.
func MarkSkipRefresh(req *http.Request) {
	req.Header.Set(SkipRefreshHeader, "1")
}

func requiresAuth(req *http.Request) bool {
	return req.Header.Get(RequireAuthHeader) == "1"
}

func skipsRefresh(req *http.Request) bool {
	return req.Header.Get(SkipRefreshHeader) == "1"
}
