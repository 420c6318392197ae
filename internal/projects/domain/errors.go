package domain

import "errors"

// ErrNotFound is returned when no project exists for the requested ID.
var ErrNotFound = errors.New("project not found")
