package services

import (
	"github.com/Gescomph/gescomph-portal/internal/client/httpx"
	"github.com/Gescomph/gescomph-portal/internal/client/models"
)

// SquareService manages plazas through the uniform CRUD surface.
type SquareService struct {
	*CRUD[models.Square, models.SquareCreate, models.SquareCreate]
}

func NewSquareService(api *httpx.Client) *SquareService {
	return &SquareService{
		CRUD: NewCRUD[models.Square, models.SquareCreate, models.SquareCreate](api, "plaza"),
	}
}
