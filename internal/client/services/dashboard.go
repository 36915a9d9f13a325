package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Gescomph/gescomph-portal/internal/client/models"
)

// DashboardSummary aggregates the figures shown on the landing dashboard.
type DashboardSummary struct {
	Contracts           models.ContractMetrics
	Squares             int
	Establishments      int
	PendingAppointments int
}

// DashboardService composes the resource services into the dashboard view.
type DashboardService struct {
	contracts      *ContractService
	squares        *SquareService
	establishments *EstablishmentService
	appointments   *AppointmentService
}

func NewDashboardService(c *ContractService, s *SquareService, e *EstablishmentService, a *AppointmentService) *DashboardService {
	return &DashboardService{contracts: c, squares: s, establishments: e, appointments: a}
}

// Summary fetches the four figures concurrently. The first failure cancels
// the remaining fetches and is returned as the single error.
func (d *DashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	var out DashboardSummary

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		m, err := d.contracts.Metrics(ctx)
		if err != nil {
			return err
		}
		out.Contracts = *m
		return nil
	})
	g.Go(func() error {
		squares, err := d.squares.GetAll(ctx)
		if err != nil {
			return err
		}
		out.Squares = len(squares)
		return nil
	})
	g.Go(func() error {
		ests, err := d.establishments.List(ctx, ActiveOnly())
		if err != nil {
			return err
		}
		out.Establishments = len(ests)
		return nil
	})
	g.Go(func() error {
		apps, err := d.appointments.GetAll(ctx)
		if err != nil {
			return err
		}
		for _, a := range apps {
			if a.Status == models.AppointmentPending {
				out.PendingAppointments++
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard summary: %w", err)
	}
	return &out, nil
}
