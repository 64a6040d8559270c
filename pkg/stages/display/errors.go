package display

import "errors"

// ErrSurfaceUnavailable is returned when an accelerated sink cannot get a
// GPU surface.
var ErrSurfaceUnavailable = errors.New("display: accelerated surface unavailable")
