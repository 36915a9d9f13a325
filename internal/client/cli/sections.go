package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/Gescomph/gescomph-portal/internal/client/models"
	"github.com/Gescomph/gescomph-portal/internal/filex"
)

// Dashboard prints the landing summary.
func (a *App) Dashboard(ctx context.Context) error {
	if !a.requireAuthenticated() {
		return nil
	}
	sum, err := a.dashboard.Summary(ctx)
	if err != nil {
		a.log.Warn(ctx, "dashboard fetch failed", "error", err)
		return err
	}
	printlnFn(fmt.Sprintf("Contracts: %d total, %d active, %d inactive",
		sum.Contracts.Total, sum.Contracts.Active, sum.Contracts.Inactive))
	printlnFn(fmt.Sprintf("Plazas: %d  Establishments for lease: %d  Pending appointments: %d",
		sum.Squares, sum.Establishments, sum.PendingAppointments))
	return nil
}

// Contracts lists the signed-in tenant's contracts.
func (a *App) Contracts(ctx context.Context) error {
	if !a.requireAuthenticated() {
		return nil
	}
	contracts, err := a.contracts.Mine(ctx)
	if err != nil {
		a.log.Warn(ctx, "contract listing failed", "error", err)
		return err
	}
	if len(contracts) == 0 {
		printlnFn("No contracts")
		return nil
	}
	for _, c := range contracts {
		state := "inactive"
		if c.Active {
			state = "active"
		}
		printlnFn(fmt.Sprintf("#%d %s — %s to %s (%s), base rent %.2f",
			c.ID, c.FullName, c.StartDate, c.EndDate, state, c.TotalBaseRentAgreed))
	}
	return nil
}

// DownloadContract fetches a contract document and stores it under the
// downloads directory as contract-<id>.pdf.
func (a *App) DownloadContract(ctx context.Context, id string) error {
	if !a.requireAuthenticated() {
		return nil
	}
	contractID, err := strconv.Atoi(id)
	if err != nil {
		printlnFn("Contract id must be a number")
		return err
	}

	data, err := a.contracts.DownloadPDF(ctx, contractID)
	if err != nil {
		a.log.Warn(ctx, "contract download failed", "error", err)
		return err
	}

	name := fmt.Sprintf("contract-%d.pdf", contractID)
	path, err := filex.SaveTo("downloads", name, data)
	if err != nil {
		a.log.Error(ctx, "cannot write contract file", "file", name, "error", err)
		return err
	}
	a.notifier.Success("Contract", "Saved "+path)
	return nil
}

// Squares lists the plazas.
func (a *App) Squares(ctx context.Context) error {
	if !a.requireAuthenticated() {
		return nil
	}
	squares, err := a.squares.GetAll(ctx)
	if err != nil {
		a.log.Warn(ctx, "plaza listing failed", "error", err)
		return err
	}
	for _, s := range squares {
		printlnFn(fmt.Sprintf("#%d %s — %s", s.ID, s.Name, s.Location))
	}
	return nil
}

// Establishments browses the public storefront cards.
func (a *App) Establishments(ctx context.Context) error {
	ests, err := a.establishments.Cards(ctx)
	if err != nil {
		a.log.Warn(ctx, "establishment listing failed", "error", err)
		return err
	}
	for _, e := range ests {
		printlnFn(fmt.Sprintf("#%d %s (%s) — %.1f m², rent %.2f",
			e.ID, e.Name, e.PlazaName, e.AreaM2, e.RentValueBase))
	}
	return nil
}

// Appointments lists the visit requests.
func (a *App) Appointments(ctx context.Context) error {
	if !a.requireAuthenticated() {
		return nil
	}
	apps, err := a.appointments.GetAll(ctx)
	if err != nil {
		a.log.Warn(ctx, "appointment listing failed", "error", err)
		return err
	}
	for _, ap := range apps {
		printlnFn(fmt.Sprintf("#%d %s — establishment %d, requested %s (status %d)",
			ap.ID, ap.FullName, ap.EstablishmentID, ap.RequestDate, ap.Status))
	}
	return nil
}

// RequestAppointment files a new establishment visit request. The endpoint
// is public: prospective tenants book visits before having an account.
func (a *App) RequestAppointment(ctx context.Context) error {
	var req models.AppointmentCreate
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Enter first name", &req.FirstName},
		{"Enter last name", &req.LastName},
		{"Enter document number", &req.Document},
		{"Enter email", &req.Email},
		{"Enter phone", &req.Phone},
		{"Enter address", &req.Address},
		{"Enter visit date (YYYY-MM-DD)", &req.RequestDate},
		{"Describe the visit", &req.Description},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, os.Stdout)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	est, err := getSimpleText(a.reader, "Enter establishment id", os.Stdout)
	if err != nil {
		return err
	}
	req.EstablishmentID, err = strconv.Atoi(est)
	if err != nil {
		printlnFn("Establishment id must be a number")
		return err
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

	ap, err := a.appointments.Request(ctx, req)
	if err != nil {
		a.log.Warn(ctx, "appointment request failed", "error", err)
		return err
	}
	a.notifier.Success("Appointment", fmt.Sprintf("Request #%d filed.", ap.ID))
	return nil
}
