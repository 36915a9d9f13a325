package notify

import (
	"bytes"
	"testing"
	"time"

	"github.com/Gescomph/gescomph-portal/internal/client/apperr"
)

type recordingNotifier struct {
	errors    []string
	successes []string
}

func (r *recordingNotifier) Error(title, message string)   { r.errors = append(r.errors, message) }
func (r *recordingNotifier) Success(title, message string) { r.successes = append(r.successes, message) }

func TestAlerts_SuppressesAuthValidationAndNotFound(t *testing.T) {
	rec := &recordingNotifier{}
	a := NewAlerts(rec, time.Minute)

	a.ObserveError(&apperr.Error{Kind: apperr.KindUnauthorized, Message: "401"})
	a.ObserveError(&apperr.Error{Kind: apperr.KindValidation, Message: "Invalid"})
	a.ObserveError(&apperr.Error{Kind: apperr.KindNotFound, Message: "missing"})
	a.ObserveError(nil)

	if len(rec.errors) != 0 {
		t.Fatalf("expected no notifications, got %v", rec.errors)
	}
}

func TestAlerts_ShowsBusinessAndNetworkErrors(t *testing.T) {
	rec := &recordingNotifier{}
	a := NewAlerts(rec, time.Minute)

	a.ObserveError(&apperr.Error{Kind: apperr.KindBusiness, Message: "Contract overlaps"})
	a.ObserveError(&apperr.Error{Kind: apperr.KindNetwork, Message: "No connection to the server. Check your network."})

	if len(rec.errors) != 2 {
		t.Fatalf("expected 2 notifications, got %v", rec.errors)
	}
	if rec.errors[0] != "Contract overlaps" {
		t.Fatalf("unexpected message: %q", rec.errors[0])
	}
}

func TestAlerts_DedupsSameTraceIDWithinWindow(t *testing.T) {
	rec := &recordingNotifier{}
	a := NewAlerts(rec, time.Minute)

	current := time.Unix(1000, 0)
	a.now = func() time.Time { return current }

	e := &apperr.Error{Kind: apperr.KindBusiness, Message: "dup", TraceID: "t-1"}
	a.ObserveError(e)
	a.ObserveError(e)

	if len(rec.errors) != 1 {
		t.Fatalf("expected 1 notification within window, got %d", len(rec.errors))
	}

	// Window elapses: the same trace id notifies again.
	current = current.Add(2 * time.Minute)
	a.ObserveError(e)

	if len(rec.errors) != 2 {
		t.Fatalf("expected renotification after window, got %d", len(rec.errors))
	}
}

func TestAlerts_NoTraceIDNeverDeduped(t *testing.T) {
	rec := &recordingNotifier{}
	a := NewAlerts(rec, time.Minute)

	e := &apperr.Error{Kind: apperr.KindUnexpected, Message: "boom"}
	a.ObserveError(e)
	a.ObserveError(e)

	if len(rec.errors) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(rec.errors))
	}
}

func TestConsole_Output(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.Success("Session", "signed in")
	c.Error("Error", "boom")

	out := buf.String()
	if out != "[ok] Session: signed in\n[error] Error: boom\n" {
		t.Fatalf("unexpected output:\n%s", out)
	}
}
