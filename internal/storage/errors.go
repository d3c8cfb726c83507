package storageerrors

import "errors"

var (
	ErrNotFound = errors.New("not found")
)
