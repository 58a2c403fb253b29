package buffer

import "errors"

// ErrUnavailable indicates the buffer cannot report or mutate its state,
// typically because the focused text target went away.
var ErrUnavailable = errors.New("buffer: state unavailable")
