package request

import (
	"time"

	"github.com/google/uuid"

	"github.com/spycraft69/GAMA-Product-Request/internal/domains/product"
)

// Status is the lifecycle of a demo copy request
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusDenied    Status = "DENIED"
	StatusFulfilled Status = "FULFILLED"
)

// statusTransitions encodes the allowed moves. DENIED and FULFILLED
// are terminal.
var statusTransitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusDenied},
	StatusApproved: {StatusFulfilled},
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDenied, StatusFulfilled:
		return true
	}
	return false
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// Request is a shipment request from a non-profit or educational
// organization for one product. Submitted anonymously, so all contact
// and shipping data lives on the row instead of a user account.
type Request struct {
	ID        uuid.UUID `db:"id" json:"id"`
	ProductID uuid.UUID `db:"product_id" json:"productId"`
	Status    Status    `db:"status" json:"status"`

	OrganizationName string `db:"organization_name" json:"organizationName"`
	OrganizationType string `db:"organization_type" json:"organizationType"`

	ContactName  string  `db:"contact_name" json:"contactName"`
	ContactEmail string  `db:"contact_email" json:"contactEmail"`
	ContactPhone *string `db:"contact_phone" json:"contactPhone"`

	ShippingAddress string `db:"shipping_address" json:"shippingAddress"`
	ShippingCity    string `db:"shipping_city" json:"shippingCity"`
	ShippingState   string `db:"shipping_state" json:"shippingState"`
	ShippingZip     string `db:"shipping_zip" json:"shippingZip"`
	ShippingCountry string `db:"shipping_country" json:"shippingCountry"`

	EventDate         *time.Time `db:"event_date" json:"eventDate"`
	ExpectedAttendees *int       `db:"expected_attendees" json:"expectedAttendees"`
	Message           *string    `db:"message" json:"message"`

	// Product with publisher summary and genres, attached on reads
	Product *product.Product `json:"product,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
