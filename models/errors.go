package models

import "github.com/pkg/errors"

// ErrNotFound marks a lookup miss that should surface as 404 rather than 500.
var ErrNotFound = errors.New("record not found")
