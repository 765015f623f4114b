package repository

import "errors"

// ErrNotFound is returned when an update or delete targets a missing record.
var ErrNotFound = errors.New("not found")
