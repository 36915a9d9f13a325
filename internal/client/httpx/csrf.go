package httpx

import "net/http"

// CSRF mirrors the backend's CSRF cookie into the expected request header.
// The cookie jar itself provides the credentialed (cookie-bearing) mode.
// Re-running the stage on a replayed request re-reads the jar, so attachment
// stays idempotent and picks up a token rotated by the refresh call.
func CSRF(jar http.CookieJar) Middleware {
	return func(next Doer) Doer {
		return DoerFunc(func(req *http.Request) (*http.Response, error) {
			if jar != nil {
				for _, ck := range jar.Cookies(req.URL) {
					if ck.Name == CSRFCookieName && ck.Value != "" {
						req.Header.Set(CSRFHeaderName, ck.Value)
						break
					}
				}
			}
			return next.Do(req)
		})
	}
}
