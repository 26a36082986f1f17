package user

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// ========================================
// AUTH DTOs
// ========================================

// RegisterRequest carries the signup form.
// CompanyName/Website apply to PUBLISHER accounts, Organization to the
// requestor roles; the unused fields are ignored.
type RegisterRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required"`
	Password     string `json:"password" binding:"required"`
	Role         string `json:"role" binding:"required"`
	Organization string `json:"organization,omitempty"`
	CompanyName  string `json:"companyName,omitempty"`
	Website      string `json:"website,omitempty"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.EmailFormat.Error("invalid email format"),
			validation.Length(5, 255),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be 8-128 characters"),
		),
		validation.Field(&r.Role,
			validation.Required.Error("role is required"),
			validation.In("PUBLISHER", "NONPROFIT", "EDUCATIONAL").Error("role must be PUBLISHER, NONPROFIT or EDUCATIONAL"),
		),
		validation.Field(&r.CompanyName,
			validation.When(r.Role == "PUBLISHER",
				validation.Required.Error("company name is required for publisher accounts"),
			),
		),
		validation.Field(&r.Website,
			validation.When(r.Website != "", is.URL.Error("website must be a valid URL")),
		),
	)
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.EmailFormat),
		validation.Field(&r.Password, validation.Required),
	)
}

// LoginResponse carries the session token
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        UserDTO   `json:"user"`
}

// ========================================
// USER PROFILE DTOs
// ========================================

// UserDTO - public user representation (safe to expose)
type UserDTO struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	Organization *string   `json:"organization,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToDTO converts User entity to UserDTO
func (u *User) ToDTO() UserDTO {
	return UserDTO{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Role:         u.Role,
		Organization: u.Organization,
		CreatedAt:    u.CreatedAt,
	}
}
