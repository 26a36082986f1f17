package product

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ProductForm is the multipart create/update payload, before the
// lenient parsing of player counts and genre cleanup. The handler
// collects it from the form fields; the image file travels separately.
type ProductForm struct {
	Name        string   `form:"name"`
	Description string   `form:"description"`
	Genres      []string `form:"genres"`
	InfoURL     string   `form:"infoUrl"`
	MinPlayers  string   `form:"minPlayers"`
	MaxPlayers  string   `form:"maxPlayers"`
	PlayTime    string   `form:"playTime"`
	AgeRange    string   `form:"ageRange"`
	IsAvailable bool     `form:"-"`
}

func (f ProductForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name,
			validation.Required.Error("Product name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&f.InfoURL,
			validation.When(f.InfoURL != "", is.URL.Error("info link must be a valid URL")),
		),
	)
}

// UploadedImage carries a decoded multipart file into the service
type UploadedImage struct {
	FileName string
	Data     []byte
}
