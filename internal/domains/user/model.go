package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity record behind every account.
// Only PUBLISHER accounts own a publisher profile; requestor accounts
// carry the organization name inline.
type User struct {
	ID    uuid.UUID `db:"id" json:"id"`
	Email string    `db:"email" json:"email"`

	PasswordHash string `db:"password_hash" json:"-"` // never expose in JSON

	Name string `db:"name" json:"name"`
	Role Role   `db:"role" json:"role"`

	// Set for NONPROFIT / EDUCATIONAL accounts, nil for publishers
	Organization *string `db:"organization" json:"organization,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Role enum. Immutable after registration: there is no role-change path.
type Role string

const (
	RolePublisher   Role = "PUBLISHER"
	RoleNonprofit   Role = "NONPROFIT"
	RoleEducational Role = "EDUCATIONAL"
)

// IsValid reports whether the role is one of the recognized values.
// A stored role outside this set is a data-integrity problem and is
// treated as such by the login path.
func (r Role) IsValid() bool {
	switch r {
	case RolePublisher, RoleNonprofit, RoleEducational:
		return true
	}
	return false
}

// String implements Stringer interface
func (r Role) String() string {
	return string(r)
}

// IsPublisher reports whether the role may own a catalog
func (r Role) IsPublisher() bool {
	return r == RolePublisher
}
