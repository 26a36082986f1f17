package request

import "errors"

var (
	ErrRequestNotFound = errors.New("request not found")

	// ErrProductUnavailable fires when the target product exists but the
	// publisher has switched availability off.
	ErrProductUnavailable = errors.New("Product is not available for sample product requests")

	ErrInvalidStatus     = errors.New("unknown request status")
	ErrInvalidTransition = errors.New("status change not allowed from the current status")

	// ErrNotOwner means the authenticated publisher does not own the
	// requested product. Rendered as 401, not 404.
	ErrNotOwner = errors.New("not authorized to manage this request")
)
