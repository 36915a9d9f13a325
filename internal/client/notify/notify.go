// Package notify renders one-shot user-facing notifications and suppresses
// duplicates and errors that the originating view renders inline.
package notify

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/Gescomph/gescomph-portal/internal/client/apperr"
)

// Notifier shows a dismissible user-facing message.
type Notifier interface {
	Success(title, message string)
	Error(title, message string)
}

// Console writes notifications to a terminal writer.
type Console struct {
	w io.Writer
}

func NewConsole(w io.Writer) *Console { return &Console{w: w} }

func (c *Console) Success(title, message string) {
	fmt.Fprintf(c.w, "[ok] %s: %s\n", title, message)
}

func (c *Console) Error(title, message string) {
	fmt.Fprintf(c.w, "[error] %s: %s\n", title, message)
}

// DedupWindow is how long a backend trace id suppresses repeat notifications.
const DedupWindow = 30 * time.Second

// Alerts applies the global notification policy to normalized errors:
//
//   - 401 is never toasted here; the auth flow owns its surfacing.
//   - Validation and NotFound are rendered inline by the caller, so they are
//     suppressed to avoid duplicate messages.
//   - Two errors with the same backend trace id within the dedup window
//     produce a single notification.
type Alerts struct {
	n      Notifier
	window time.Duration

	mu   sync.Mutex
	seen map[string]time.Time
	now  func() time.Time
}

func NewAlerts(n Notifier, window time.Duration) *Alerts {
	if window <= 0 {
		window = DedupWindow
	}
	return &Alerts{
		n:      n,
		window: window,
		seen:   make(map[string]time.Time),
		now:    time.Now,
	}
}

// ObserveError is wired into the pipeline's normalization stage.
func (a *Alerts) ObserveError(e *apperr.Error) {
	if e == nil || e.Kind == apperr.KindUnauthorized {
		return
	}
	if e.Kind == apperr.KindValidation || e.Kind == apperr.KindNotFound {
		return
	}
	if !a.firstWithinWindow(e.TraceID) {
		return
	}
	a.n.Error("Error", e.Message)
}

// firstWithinWindow reports whether a notification for this trace id should
// be shown. Errors without a trace id are never deduplicated.
func (a *Alerts) firstWithinWindow(traceID string) bool {
	if traceID == "" {
		return true
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	now := a.now()
	for id, ts := range a.seen {
		if now.Sub(ts) > a.window {
			delete(a.seen, id)
		}
	}

	if _, dup := a.seen[traceID]; dup {
		return false
	}
	a.seen[traceID] = now
	return true
}
