package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Gescomph/gescomph-portal/internal/client/httpx"
	"github.com/Gescomph/gescomph-portal/internal/client/models"
)

// AppointmentService manages establishment visit requests.
type AppointmentService struct {
	*CRUD[models.Appointment, models.AppointmentCreate, models.AppointmentCreate]

	api *httpx.Client
}

func NewAppointmentService(api *httpx.Client) *AppointmentService {
	return &AppointmentService{
		CRUD: NewCRUD[models.Appointment, models.AppointmentCreate, models.AppointmentCreate](api, "appointment"),
		api:  api,
	}
}

// Request files a new visit request. Anyone can ask for a visit, so no
// session is required.
func (s *AppointmentService) Request(ctx context.Context, in models.AppointmentCreate) (*models.Appointment, error) {
	var out models.Appointment
	if err := s.api.JSON(ctx, http.MethodPost, "appointment", in, &out); err != nil {
		return nil, fmt.Errorf("request appointment: %w", err)
	}
	return &out, nil
}
