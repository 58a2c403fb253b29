package config

import "errors"

// ErrStoreClosed indicates an operation on a closed Store.
var ErrStoreClosed = errors.New("config: store closed")
