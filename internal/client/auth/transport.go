// Package auth implements the authentication surface of the portal client:
// the transport for the /auth endpoints, the single-flight refresh
// coordinator, and the silent session restore performed at startup.
package auth

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Gescomph/gescomph-portal/internal/client/httpx"
	"github.com/Gescomph/gescomph-portal/internal/client/models"
	"github.com/Gescomph/gescomph-portal/internal/client/session"
	"github.com/Gescomph/gescomph-portal/internal/logging"
)

// Transport performs the authentication network calls and keeps the session
// store in sync with their outcomes. It owns no retry or refresh policy:
// that lives in the Coordinator and the pipeline's auth gate.
type Transport struct {
	api   *httpx.Client
	store *session.Store
	bus   *session.Bus
	log   logging.Logger
}

func NewTransport(api *httpx.Client, store *session.Store, bus *session.Bus, log logging.Logger) *Transport {
	return &Transport{api: api, store: store, bus: bus, log: log}
}

// Login authenticates with email/password. Without a second factor the
// session is established immediately (identity fetched and stored); with one
// the response carries the challenge and no session exists yet.
func (t *Transport) Login(ctx context.Context, creds models.LoginCredentials) (*models.LoginResponse, error) {
	var res models.LoginResponse
	if err := t.api.JSON(ctx, http.MethodPost, "auth/login", creds, &res); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if res.RequiresTwoFactor {
		return &res, nil
	}
	if _, err := t.WhoAmI(ctx); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return &res, nil
}

// ConfirmTwoFactor completes a challenged login and establishes the session.
func (t *Transport) ConfirmTwoFactor(ctx context.Context, req models.TwoFactorVerifyRequest) (*models.TwoFactorConfirmResponse, error) {
	var res models.TwoFactorConfirmResponse
	if err := t.api.JSON(ctx, http.MethodPost, "auth/confirmar-2fa", req, &res); err != nil {
		return nil, fmt.Errorf("confirm two-factor: %w", err)
	}
	if _, err := t.WhoAmI(ctx); err != nil {
		return nil, fmt.Errorf("confirm two-factor: %w", err)
	}
	return &res, nil
}

// ResendTwoFactor reissues the pending challenge.
func (t *Transport) ResendTwoFactor(ctx context.Context, email string) (*models.TwoFactorResendResponse, error) {
	var res models.TwoFactorResendResponse
	in := map[string]string{"email": email}
	if err := t.api.JSON(ctx, http.MethodPost, "auth/reenviar-2fa", in, &res); err != nil {
		return nil, fmt.Errorf("resend two-factor: %w", err)
	}
	return &res, nil
}

// WhoAmI fetches the current identity and replaces the store's snapshot.
func (t *Transport) WhoAmI(ctx context.Context) (*models.User, error) {
	var u models.User
	err := t.api.JSON(ctx, http.MethodGet, "auth/me", nil, &u, httpx.WithRequireAuth())
	if err != nil {
		return nil, fmt.Errorf("whoami: %w", err)
	}
	t.store.Set(&u)
	return &u, nil
}

// Refresh exchanges the refresh credential for a renewed access credential.
// Marked skip-refresh so its own 401 is terminal instead of recursing.
func (t *Transport) Refresh(ctx context.Context) error {
	err := t.api.JSON(ctx, http.MethodPost, "auth/refresh", struct{}{}, nil,
		httpx.WithRequireAuth(), httpx.WithSkipRefresh())
	if err != nil {
		return fmt.Errorf("refresh: %w", err)
	}
	return nil
}

// ReloadMeSkipRefresh rehydrates the identity after a successful refresh
// without re-entering the refresh path.
func (t *Transport) ReloadMeSkipRefresh(ctx context.Context) (*models.User, error) {
	var u models.User
	err := t.api.JSON(ctx, http.MethodGet, "auth/me", nil, &u,
		httpx.WithRequireAuth(), httpx.WithSkipRefresh())
	if err != nil {
		return nil, fmt.Errorf("reload identity: %w", err)
	}
	t.store.Set(&u)
	return &u, nil
}

// Logout invalidates the server-side session, clears the store and
// broadcasts the logout event.
func (t *Transport) Logout(ctx context.Context) error {
	err := t.api.JSON(ctx, http.MethodPost, "auth/logout", struct{}{}, nil, httpx.WithRequireAuth())
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	t.store.Clear()
	t.bus.EmitLogout()
	return nil
}

// Register creates a new account. No session is established.
func (t *Transport) Register(ctx context.Context, req models.RegisterRequest) error {
	if err := t.api.JSON(ctx, http.MethodPost, "auth/register", req, nil); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

// ToggleTwoFactor enables or disables the second factor for the current user.
func (t *Transport) ToggleTwoFactor(ctx context.Context, enabled bool) error {
	in := map[string]bool{"enabled": enabled}
	err := t.api.JSON(ctx, http.MethodPost, "auth/two-factor", in, nil, httpx.WithRequireAuth())
	if err != nil {
		return fmt.Errorf("toggle two-factor: %w", err)
	}
	return nil
}

// ChangePassword rotates the current user's password.
func (t *Transport) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error {
	if err := t.api.JSON(ctx, http.MethodPost, "change-password", req, nil); err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	return nil
}

// RequestPasswordReset emails a recovery code.
func (t *Transport) RequestPasswordReset(ctx context.Context, email string) error {
	in := map[string]string{"email": email}
	err := t.api.JSON(ctx, http.MethodPost, "auth/recuperar/enviar-codigo", in, nil)
	if err != nil {
		return fmt.Errorf("request password reset: %w", err)
	}
	return nil
}

// ConfirmPasswordReset completes a recovery with the emailed code.
func (t *Transport) ConfirmPasswordReset(ctx context.Context, req models.PasswordResetConfirm) error {
	err := t.api.JSON(ctx, http.MethodPost, "auth/recuperar/confirmar", req, nil)
	if err != nil {
		return fmt.Errorf("confirm password reset: %w", err)
	}
	return nil
}
