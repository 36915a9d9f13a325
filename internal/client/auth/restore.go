package auth

import (
	"context"
	"strings"
)

// PaymentReturnRoute is the payment-gateway callback route. Silent restore
// is skipped there so the callback handling is never delayed or disturbed.
const PaymentReturnRoute = "payment/success"

// Restore performs the best-effort silent session restore run at startup,
// before the shell becomes interactive: fetch the identity; if that fails,
// refresh once and rehydrate. Every failure is swallowed — the user simply
// starts signed out.
func (t *Transport) Restore(ctx context.Context, currentRoute string) {
	if strings.Contains(currentRoute, PaymentReturnRoute) {
		return
	}

	if _, err := t.WhoAmI(ctx); err == nil {
		t.log.Info(ctx, "session restored")
		return
	}

	if err := t.Refresh(ctx); err != nil {
		t.log.Debug(ctx, "no session to restore")
		return
	}
	if _, err := t.ReloadMeSkipRefresh(ctx); err != nil {
		t.log.Debug(ctx, "session restore failed after refresh", "error", err)
		return
	}
	t.log.Info(ctx, "session restored via refresh")
}
