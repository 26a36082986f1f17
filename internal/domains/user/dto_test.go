package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRegisterPayload() RegisterRequest {
	return RegisterRequest{
		Name:        "Sam Okafor",
		Email:       "sam@meeple-forge.example",
		Password:    "correct horse battery",
		Role:        "PUBLISHER",
		CompanyName: "Meeple Forge Games",
	}
}

// Addresses at unresolvable domains are fine; only the syntax is
// checked, never DNS.
func TestRegisterValidate_EmailSyntaxOnly(t *testing.T) {
	payload := validRegisterPayload()
	assert.NoError(t, payload.Validate())

	payload.Email = "missing-at-sign.example"
	assert.Error(t, payload.Validate())
}

func TestLoginValidate_EmailSyntaxOnly(t *testing.T) {
	payload := LoginRequest{Email: "sam@meeple-forge.example", Password: "pw"}
	assert.NoError(t, payload.Validate())
}
