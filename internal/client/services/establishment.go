package services

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Gescomph/gescomph-portal/internal/client/httpx"
	"github.com/Gescomph/gescomph-portal/internal/client/models"
)

// The backend exposes establishments under a capitalized segment, unlike the
// other resources.
const establishmentResource = "Establishments"

// EstablishmentService manages leasable units. The read endpoints are public
// (they back the storefront listings) and accept activity/limit filters; the
// write surface comes from the embedded CRUD client.
type EstablishmentService struct {
	*CRUD[models.Establishment, models.EstablishmentCreate, models.EstablishmentCreate]

	api *httpx.Client
}

func NewEstablishmentService(api *httpx.Client) *EstablishmentService {
	return &EstablishmentService{
		CRUD: NewCRUD[models.Establishment, models.EstablishmentCreate, models.EstablishmentCreate](api, establishmentResource),
		api:  api,
	}
}

// ListOption narrows a public establishment listing.
type ListOption func(*[]httpx.RequestOption)

// ActiveOnly keeps only establishments currently available for lease.
func ActiveOnly() ListOption {
	return func(opts *[]httpx.RequestOption) {
		*opts = append(*opts, httpx.WithQuery("activeOnly", "true"))
	}
}

// Limit caps the number of returned establishments.
func Limit(n int) ListOption {
	return func(opts *[]httpx.RequestOption) {
		*opts = append(*opts, httpx.WithQuery("limit", strconv.Itoa(n)))
	}
}

func (s *EstablishmentService) list(ctx context.Context, path string, opts ...ListOption) ([]models.Establishment, error) {
	var reqOpts []httpx.RequestOption
	for _, opt := range opts {
		opt(&reqOpts)
	}
	var out []models.Establishment
	if err := s.api.JSON(ctx, http.MethodGet, path, nil, &out, reqOpts...); err != nil {
		return nil, fmt.Errorf("list establishments: %w", err)
	}
	return out, nil
}

// List returns establishments, optionally filtered.
func (s *EstablishmentService) List(ctx context.Context, opts ...ListOption) ([]models.Establishment, error) {
	return s.list(ctx, establishmentResource, opts...)
}

// ByPlaza returns the establishments of one plaza.
func (s *EstablishmentService) ByPlaza(ctx context.Context, plazaID int, opts ...ListOption) ([]models.Establishment, error) {
	return s.list(ctx, establishmentResource+"/plaza/"+strconv.Itoa(plazaID), opts...)
}

// Cards returns the storefront card projection.
func (s *EstablishmentService) Cards(ctx context.Context, opts ...ListOption) ([]models.Establishment, error) {
	return s.list(ctx, establishmentResource+"/cards", opts...)
}

// CardsByPlaza returns the card projection scoped to one plaza.
func (s *EstablishmentService) CardsByPlaza(ctx context.Context, plazaID int, opts ...ListOption) ([]models.Establishment, error) {
	return s.list(ctx, establishmentResource+"/cards/plaza/"+strconv.Itoa(plazaID), opts...)
}
