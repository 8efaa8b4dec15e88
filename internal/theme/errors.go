package theme

import "errors"

var ErrUnknownMode = errors.New("theme: unknown mode")
