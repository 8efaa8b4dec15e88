package field

import "errors"

// ErrMissingResource indicates the drawing surface, its 2D context or the
// viewport is unavailable.
var ErrMissingResource = errors.New("field: drawing surface unavailable")
