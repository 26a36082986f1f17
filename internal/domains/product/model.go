package product

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog item owned by exactly one publisher.
// Genres and RequestCount are derived on read: genres from the
// product_genres join, the count from requests.
type Product struct {
	ID          uuid.UUID `db:"id" json:"id"`
	PublisherID uuid.UUID `db:"publisher_id" json:"publisherId"`

	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description"`
	ImageURL    *string `db:"image_url" json:"imageUrl"`
	InfoURL     *string `db:"info_url" json:"infoUrl"`

	MinPlayers *int    `db:"min_players" json:"minPlayers"`
	MaxPlayers *int    `db:"max_players" json:"maxPlayers"`
	PlayTime   *string `db:"play_time" json:"playTime"`
	AgeRange   *string `db:"age_range" json:"ageRange"`

	IsAvailable bool `db:"is_available" json:"isAvailable"`

	Genres       []string `json:"genres"`
	RequestCount int      `json:"requestCount"`

	// Publisher summary, attached on public reads
	Publisher *PublisherSummary `json:"publisher,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// PublisherSummary is the slice of publisher data embedded in catalog
// responses.
type PublisherSummary struct {
	ID          uuid.UUID `json:"id"`
	CompanyName string    `json:"companyName"`
	LogoURL     *string   `json:"logoUrl"`
}

// Genre is a shared tag, deduplicated by name. Created on first use,
// never deleted.
type Genre struct {
	ID   uuid.UUID `db:"id" json:"id"`
	Name string    `db:"name" json:"name"`
}
