package overlay

import "errors"

var (
	// ErrDecode is returned when the logo bytes are not a decodable image.
	ErrDecode = errors.New("failed to decode logo image")

	// ErrNoImage is returned when Composite is called without a logo image.
	ErrNoImage = errors.New("no logo image provided")

	// ErrScaleFraction is returned when ScaleFraction is outside (0, 1].
	ErrScaleFraction = errors.New("logo scale fraction must be in (0, 1]")

	// ErrLogoTooSmall is returned when the scaled logo would have no pixels.
	ErrLogoTooSmall = errors.New("scaled logo has zero size")
)
