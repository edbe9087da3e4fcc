package domain

import "errors"

// Returned when a constructor or registration receives a missing or out-of-range value.
var ErrInvalidArgument = errors.New("invalid argument")

// Returned by repositories when the requested scenario or run does not exist.
var ErrNotFound = errors.New("not found")
