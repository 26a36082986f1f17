package directory

import (
	"github.com/google/uuid"

	"github.com/spycraft69/GAMA-Product-Request/internal/domains/product"
)

// Listing is a publisher as shown in the public directory: company
// details, the contact person, and only the products worth browsing
// (available and carrying an image).
type Listing struct {
	ID          uuid.UUID `json:"id"`
	CompanyName string    `json:"companyName"`
	Description *string   `json:"description"`
	Website     *string   `json:"website"`
	LogoURL     *string   `json:"logoUrl"`

	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail"`

	Products []product.Product `json:"products"`
}
