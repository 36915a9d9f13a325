package models

// ContractCreate is the payload for creating a lease contract together with
// the tenant's person record.
type ContractCreate struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Document  string  `json:"document"`
	Phone     string  `json:"phone"`
	Address   string  `json:"address"`
	CityID    int     `json:"cityId"`
	Email     *string `json:"email,omitempty"`

	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`

	EstablishmentIDs    []int `json:"establishmentIds"`
	UseSystemParameters bool  `json:"useSystemParameters"`
	ClauseIDs           []int `json:"clauseIds"`
}

// Contract is the full contract read model.
type Contract struct {
	ID        int    `json:"id"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Active    bool   `json:"active"`

	PersonID int     `json:"personId"`
	FullName string  `json:"fullName"`
	Document string  `json:"document"`
	Phone    string  `json:"phone"`
	Email    *string `json:"email"`
	Address  *string `json:"address"`

	TotalBaseRentAgreed float64 `json:"totalBaseRentAgreed"`
	TotalUvtQtyAgreed   float64 `json:"totalUvtQtyAgreed"`

	PremisesLeased []PremisesLeased `json:"premisesLeased"`
	Clauses        []Clause         `json:"clauses"`
}

// PremisesLeased links a contract to one leased establishment.
type PremisesLeased struct {
	EstablishmentID   int     `json:"establishmentId"`
	EstablishmentName string  `json:"establishmentName"`
	RentValueBase     float64 `json:"rentValueBase"`
	UvtQty            float64 `json:"uvtQty"`
}

// Clause is a contract clause reference.
type Clause struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ContractMetrics is the public aggregate exposed at /contract/metrics.
type ContractMetrics struct {
	Total    int `json:"total"`
	Active   int `json:"activos"`
	Inactive int `json:"inactivos"`
}
