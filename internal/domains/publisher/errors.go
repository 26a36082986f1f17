package publisher

import "errors"

var (
	ErrProfileNotFound     = errors.New("publisher profile not found")
	ErrCompanyNameRequired = errors.New("company name is required")
	ErrContactNameRequired = errors.New("contact name is required")
	ErrLogoRequired        = errors.New("logo file is required")
	ErrInvalidImage        = errors.New("uploaded file is not a valid image")
)
