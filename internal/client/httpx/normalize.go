package httpx

import (
	"io"
	"net/http"

	"github.com/Gescomph/gescomph-portal/internal/client/apperr"
)

// Error bodies larger than this are truncated before mapping.
const maxErrorBody = 64 << 10

// Normalize converts transport failures and non-2xx responses into
// *apperr.Error before re-raising them, and reports every normalized error
// to observe (nil to disable). Successful responses pass through untouched;
// the error response body is fully consumed and closed here.
func Normalize(observe func(*apperr.Error)) Middleware {
	if observe == nil {
		observe = func(*apperr.Error) {}
	}
	return func(next Doer) Doer {
		return DoerFunc(func(req *http.Request) (*http.Response, error) {
			resp, err := next.Do(req)
			if err != nil {
				ae := apperr.FromTransport(err)
				observe(ae)
				return nil, ae
			}
			if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return resp, nil
			}

			body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
			resp.Body.Close()

			ae := apperr.FromResponse(resp.StatusCode, body)
			observe(ae)
			return nil, ae
		})
	}
}
