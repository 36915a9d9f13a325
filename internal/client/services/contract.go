package services

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Gescomph/gescomph-portal/internal/client/httpx"
	"github.com/Gescomph/gescomph-portal/internal/client/models"
)

// ContractService manages lease contracts. Besides the uniform CRUD surface
// it exposes the tenant-scoped listing, the public metrics aggregate and the
// PDF download.
type ContractService struct {
	*CRUD[models.Contract, models.ContractCreate, models.ContractCreate]

	api *httpx.Client
	now func() time.Time
}

func NewContractService(api *httpx.Client) *ContractService {
	return &ContractService{
		CRUD: NewCRUD[models.Contract, models.ContractCreate, models.ContractCreate](api, "contract"),
		api:  api,
		now:  time.Now,
	}
}

// Mine lists the contracts of the signed-in tenant. A millisecond timestamp
// is appended so intermediaries never serve a stale listing.
func (s *ContractService) Mine(ctx context.Context) ([]models.Contract, error) {
	var out []models.Contract
	ts := strconv.FormatInt(s.now().UnixMilli(), 10)
	err := s.api.JSON(ctx, http.MethodGet, "contract/mine", nil, &out,
		httpx.WithRequireAuth(), httpx.WithQuery("_ts", ts))
	if err != nil {
		return nil, fmt.Errorf("list my contracts: %w", err)
	}
	return out, nil
}

// Metrics returns the total/active/inactive contract counts. The endpoint is
// public.
func (s *ContractService) Metrics(ctx context.Context) (*models.ContractMetrics, error) {
	var out models.ContractMetrics
	if err := s.api.JSON(ctx, http.MethodGet, "contract/metrics", nil, &out); err != nil {
		return nil, fmt.Errorf("contract metrics: %w", err)
	}
	return &out, nil
}

// DownloadPDF fetches the rendered contract document.
func (s *ContractService) DownloadPDF(ctx context.Context, id int) ([]byte, error) {
	data, err := s.api.Bytes(ctx, http.MethodGet, "contract/"+strconv.Itoa(id)+"/pdf",
		httpx.WithRequireAuth())
	if err != nil {
		return nil, fmt.Errorf("download contract %d pdf: %w", id, err)
	}
	return data, nil
}
