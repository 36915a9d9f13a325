package models

// AppointmentStatus enumerates the backend's appointment workflow states.
type AppointmentStatus int

const (
	AppointmentPending AppointmentStatus = iota + 1
	AppointmentAssigned
	AppointmentApproved
	AppointmentFinished
	AppointmentRejected
	AppointmentExpired
	AppointmentPaid
	AppointmentPreLegal
	AppointmentLegal
)

// Appointment is the read model for an establishment visit request.
type Appointment struct {
	ID               int               `json:"id"`
	Description      string            `json:"description"`
	Observation      *string           `json:"observation"`
	RequestDate      string            `json:"requestDate"`
	DateTimeAssigned *string           `json:"dateTimeAssigned"`
	EstablishmentID  int               `json:"establishmentId"`
	Status           AppointmentStatus `json:"status"`
	FullName         string            `json:"fullName"`
	Email            string            `json:"email"`
	Active           bool              `json:"active"`
}

// AppointmentCreate is the appointment request payload.
type AppointmentCreate struct {
	Description     string  `json:"description"`
	Observation     *string `json:"observation,omitempty"`
	RequestDate     string  `json:"requestDate"`
	EstablishmentID int     `json:"establishmentId"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Document  string `json:"document"`
	Address   string `json:"address"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	CityID    int    `json:"cityId"`
}
