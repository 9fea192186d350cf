package qrlab

import "errors"

// ErrEmptyPayload is returned when the formatted payload is empty or
// whitespace-only; generation is refused and no result is produced.
var ErrEmptyPayload = errors.New("payload is empty")
