package errors

import "errors"

// requested record is not found.
var ErrMissing = errors.New("missing")

// found records more than expected.
var ErrTooMuch = errors.New("too much")
