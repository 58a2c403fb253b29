package engine

import "errors"

// ErrNilBuffer indicates the engine was constructed without a buffer.
var ErrNilBuffer = errors.New("engine: nil buffer")
