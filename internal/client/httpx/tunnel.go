package httpx

import "net/http"

// NgrokBypassHeader tells an ngrok dev tunnel to skip its browser
// interstitial and forward the request to the backend.
const NgrokBypassHeader = "ngrok-skip-browser-warning"

// NgrokBypass attaches the tunnel bypass header. Development builds only;
// production wiring must not include this stage.
func NgrokBypass() Middleware {
	return func(next Doer) Doer {
		return DoerFunc(func(req *http.Request) (*http.Response, error) {
			req.Header.Set(NgrokBypassHeader, "true")
			return next.Do(req)
		})
	}
}
