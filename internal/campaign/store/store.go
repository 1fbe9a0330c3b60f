package store

import "errors"

// ErrNotFound is returned by stores when the requested record does not
// exist. Services translate it into a domain error with CodeNotFound.
var ErrNotFound = errors.New("not found")
