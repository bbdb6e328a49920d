package models

import "errors"

// ErrInvalidInput is returned when a value fails domain validation
// (unknown meal type, non-positive amount, malformed date, ...).
var ErrInvalidInput = errors.New("invalid input")
