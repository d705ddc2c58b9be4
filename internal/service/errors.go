package service

import "errors"

// ErrInvalidInput marks validation failures. Callers translate it into a
// client error instead of a storage fault.
var ErrInvalidInput = errors.New("invalid input")
