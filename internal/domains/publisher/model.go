package publisher

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the publisher-facing company record, one-to-one with a
// PUBLISHER user. Created at registration, never deleted independently
// of the user.
type Profile struct {
	ID     uuid.UUID `db:"id" json:"id"`
	UserID uuid.UUID `db:"user_id" json:"user_id"`

	CompanyName string  `db:"company_name" json:"companyName"`
	Description *string `db:"description" json:"description,omitempty"`
	Website     *string `db:"website" json:"website,omitempty"`
	LogoURL     *string `db:"logo_url" json:"logoUrl,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
