package models

// Square is a plaza (market square) read model.
type Square struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Active      bool   `json:"active"`
}

// SquareCreate is the plaza creation payload.
type SquareCreate struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// Establishment is a leasable unit inside a plaza.
type Establishment struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	AreaM2        float64 `json:"areaM2"`
	RentValueBase float64 `json:"rentValueBase"`
	UvtQty        float64 `json:"uvtQty"`
	Address       string  `json:"address"`
	PlazaID       int     `json:"plazaId"`
	PlazaName     string  `json:"plazaName"`
	Active        bool    `json:"active"`
}

// EstablishmentCreate is the establishment creation payload.
type EstablishmentCreate struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	AreaM2        float64 `json:"areaM2"`
	RentValueBase float64 `json:"rentValueBase"`
	UvtQty        float64 `json:"uvtQty"`
	Address       string  `json:"address"`
	PlazaID       int     `json:"plazaId"`
}
