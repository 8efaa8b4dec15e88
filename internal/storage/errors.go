package storage

import "errors"

var ErrTraceNotFound = errors.New("storage: trace not found")
