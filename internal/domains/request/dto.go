package request

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreateRequestRequest is the anonymous submission payload.
// EventDate arrives as a string and is parsed leniently by the service;
// blank optional fields are stored as NULL.
type CreateRequestRequest struct {
	ProductID string `json:"productId"`

	OrganizationName string `json:"organizationName"`
	OrganizationType string `json:"organizationType"`

	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone,omitempty"`

	ShippingAddress string `json:"shippingAddress"`
	ShippingCity    string `json:"shippingCity"`
	ShippingState   string `json:"shippingState"`
	ShippingZip     string `json:"shippingZip"`
	ShippingCountry string `json:"shippingCountry"`

	EventDate         string `json:"eventDate,omitempty"`
	ExpectedAttendees string `json:"expectedAttendees,omitempty"`
	Message           string `json:"message,omitempty"`
}

func (r CreateRequestRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ProductID,
			validation.Required.Error("Product is required"),
			is.UUIDv4.Error("productId must be a UUID"),
		),
		validation.Field(&r.OrganizationName,
			validation.Required.Error("Organization name is required"),
			validation.Length(1, 255),
		),
		// The form is anonymous and the type is self-declared free text
		// ("Non-Profit", "Library", "Other", ...), so only presence is
		// checked here.
		validation.Field(&r.OrganizationType,
			validation.Required.Error("Organization type is required"),
		),
		validation.Field(&r.ContactName,
			validation.Required.Error("Contact name is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.ContactEmail,
			validation.Required.Error("Contact email is required"),
			is.EmailFormat.Error("contactEmail must be a valid email address"),
		),
		validation.Field(&r.ShippingAddress, validation.Required.Error("Shipping address is required")),
		validation.Field(&r.ShippingCity, validation.Required.Error("Shipping city is required")),
		validation.Field(&r.ShippingState, validation.Required.Error("Shipping state is required")),
		validation.Field(&r.ShippingZip, validation.Required.Error("Shipping zip is required")),
		validation.Field(&r.ShippingCountry, validation.Required.Error("Shipping country is required")),
	)
}

// UpdateStatusRequest carries the target status for PATCH /requests/:id
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r UpdateStatusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status,
			validation.Required.Error("Status is required"),
		),
	)
}
