package publisher

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// UpdateProfileRequest edits the company record plus the contact name,
// which lives on the linked user.
type UpdateProfileRequest struct {
	CompanyName string `json:"companyName" binding:"required"`
	ContactName string `json:"contactName" binding:"required"`
	Description string `json:"description,omitempty"`
	Website     string `json:"website,omitempty"`
}

func (r UpdateProfileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CompanyName,
			validation.Required.Error("Company name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.ContactName,
			validation.Required.Error("Contact name is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Website,
			validation.When(r.Website != "", is.URL.Error("website must be a valid URL")),
		),
	)
}

// ProfileResponse merges the company record with the linked user's
// contact details.
type ProfileResponse struct {
	ID           string  `json:"id"`
	CompanyName  string  `json:"companyName"`
	Description  *string `json:"description"`
	Website      *string `json:"website"`
	LogoURL      *string `json:"logoUrl"`
	ContactName  string  `json:"contactName"`
	ContactEmail string  `json:"contactEmail"`
}
