package cli

import (
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/Gescomph/gescomph-portal/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates. When the account has a
// second factor enabled the backend answers with a challenge instead of a
// session; the loop then asks for the emailed code ("resend" requests a new
// one, an empty line aborts).
func (a *App) Login(ctx context.Context) error {
	if !a.requirePublic() {
		return nil
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}

	res, err := a.auth.Login(ctx, models.LoginCredentials{Email: email, Password: password})
	if err != nil {
		a.log.Warn(ctx, "login failed", "error", err)
		return err
	}

	if res.RequiresTwoFactor {
		return a.confirmChallenge(ctx, email, res.Challenge)
	}

	a.notifier.Success("Session", "Signed in as "+a.status())
	return nil
}

func (a *App) confirmChallenge(ctx context.Context, email string, ch *models.TwoFactorChallenge) error {
	if ch != nil {
		printlnFn("A verification code was sent via " + ch.DeliveryChannel + " (expires " + ch.ExpiresAt + ")")
	}

	for {
		code, err := getSimpleText(a.reader, "Enter verification code ('resend' for a new one, empty to cancel)", os.Stdout)
		if err != nil {
			return err
		}
		switch {
		case code == "":
			printlnFn("Login cancelled")
			return nil
		case strings.EqualFold(code, "resend"):
			res, err := a.auth.ResendTwoFactor(ctx, email)
			if err != nil {
				a.log.Warn(ctx, "resend failed", "error", err)
				continue
			}
			printlnFn("New code sent (expires " + res.Challenge.ExpiresAt + ")")
		default:
			_, err := a.auth.ConfirmTwoFactor(ctx, models.TwoFactorVerifyRequest{Email: email, Code: code})
			if err != nil {
				a.log.Warn(ctx, "verification failed", "error", err)
				continue
			}
			a.notifier.Success("Session", "Signed in as "+a.status())
			return nil
		}
	}
}

// Register prompts for the account details and creates the account. No
// session is established; the user signs in afterwards.
func (a *App) Register(ctx context.Context) error {
	if !a.requirePublic() {
		return nil
	}
	var req models.RegisterRequest
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Enter email", &req.Email},
		{"Enter first name", &req.FirstName},
		{"Enter last name", &req.LastName},
		{"Enter document number", &req.Document},
		{"Enter phone", &req.Phone},
		{"Enter address", &req.Address},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, os.Stdout)
		if err != nil {
			return err
		}
		*f.dst = v
	}
	city, err := getSimpleText(a.reader, "Enter city id", os.Stdout)
	if err != nil {
		return err
	}
	req.CityID, err = strconv.Atoi(city)
	if err != nil {
		printlnFn("City id must be a number")
		return err
	}

	if err := a.auth.Register(ctx, req); err != nil {
		a.log.Warn(ctx, "registration failed", "error", err)
		return err
	}
	a.notifier.Success("Account", "Registered. You can sign in now.")
	return nil
}

// ResetPassword runs the two-step recovery: request an emailed code, then
// confirm it together with the new password.
func (a *App) ResetPassword(ctx context.Context) error {
	if !a.requirePublic() {
		return nil
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.auth.RequestPasswordReset(ctx, email); err != nil {
		a.log.Warn(ctx, "reset request failed", "error", err)
		return err
	}
	printlnFn("A recovery code was sent to " + email)

	code, err := getSimpleText(a.reader, "Enter recovery code", os.Stdout)
	if err != nil {
		return err
	}
	newPassword, err := getPassword(os.Stdout, "Enter new password")
	if err != nil {
		return err
	}

	confirm := models.PasswordResetConfirm{Email: email, Code: code, NewPassword: newPassword}
	if err := a.auth.ConfirmPasswordReset(ctx, confirm); err != nil {
		a.log.Warn(ctx, "reset confirmation failed", "error", err)
		return err
	}
	a.notifier.Success("Account", "Password updated. You can sign in now.")
	return nil
}

// ChangePassword rotates the signed-in user's password.
func (a *App) ChangePassword(ctx context.Context) error {
	if !a.requireAuthenticated() {
		return nil
	}
	current, err := getPassword(os.Stdout, "Enter current password")
	if err != nil {
		return err
	}
	next, err := getPassword(os.Stdout, "Enter new password")
	if err != nil {
		return err
	}

	req := models.ChangePasswordRequest{CurrentPassword: current, NewPassword: next}
	if err := a.auth.ChangePassword(ctx, req); err != nil {
		a.log.Warn(ctx, "password change failed", "error", err)
		return err
	}
	a.notifier.Success("Account", "Password changed.")
	return nil
}

// ToggleTwoFactor flips the second factor for the current account.
func (a *App) ToggleTwoFactor(ctx context.Context) error {
	if !a.requireAuthenticated() {
		return nil
	}

	enable := !a.store.Snapshot().TwoFactorEnabled
	if err := a.auth.ToggleTwoFactor(ctx, enable); err != nil {
		a.log.Warn(ctx, "two-factor toggle failed", "error", err)
		return err
	}
	if _, err := a.auth.WhoAmI(ctx); err != nil {
		return err
	}
	if enable {
		a.notifier.Success("Account", "Two-factor authentication enabled.")
	} else {
		a.notifier.Success("Account", "Two-factor authentication disabled.")
	}
	return nil
}

// WhoAmI prints the current identity after re-validating it server-side.
func (a *App) WhoAmI(ctx context.Context) error {
	if !a.requireAuthenticated() {
		return nil
	}
	u, err := a.auth.WhoAmI(ctx)
	if err != nil {
		a.log.Warn(ctx, "identity check failed", "error", err)
		return err
	}
	printlnFn(u.FullName + " <" + u.Email + "> roles: " + strings.Join(u.Roles, ", "))
	return nil
}

// Logout ends the session server-side; the store and the event broadcast are
// handled by the auth transport.
func (a *App) Logout(ctx context.Context) error {
	if !a.requireAuthenticated() {
		return nil
	}
	if err := a.auth.Logout(ctx); err != nil {
		a.log.Warn(ctx, "logout failed", "error", err)
		return err
	}
	return nil
}
