package errors

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidFilename = errors.New("invalid filename")
)
