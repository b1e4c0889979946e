package domain

import "errors"

// ErrNotFound is returned when an id or email does not resolve to a stored
// entity. It is the only failure the storage layer itself produces.
var ErrNotFound = errors.New("not found")
