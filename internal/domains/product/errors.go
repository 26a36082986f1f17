package product

import "errors"

var (
	// ErrProductNotFound also masks ownership mismatches on update, so
	// callers cannot probe for other publishers' product ids.
	ErrProductNotFound = errors.New("product not found")

	ErrNameRequired = errors.New("product name is required")
	ErrInvalidImage = errors.New("uploaded file is not a valid image")
)
