package directory

import "errors"

var ErrPublisherNotFound = errors.New("publisher not found")
