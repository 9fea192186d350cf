package render

import "errors"

var (
	// ErrEncode is returned when the underlying QR library cannot encode the
	// payload, typically because it exceeds the symbol capacity for the
	// requested error-correction level.
	ErrEncode = errors.New("failed to encode QR symbol")

	// ErrInvalidLevel is returned by ParseLevel for anything but L, M, Q, H.
	ErrInvalidLevel = errors.New("invalid error correction level")

	// ErrInvalidColor is returned by ParseHexColor for malformed hex colors.
	ErrInvalidColor = errors.New("invalid hex color")
)
