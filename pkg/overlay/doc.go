// Package overlay composites a logo image onto a rendered QR raster: the logo
// is optionally masked to a circle, resized to a fraction of the base width
// with Lanczos resampling, and alpha-blended centered onto the base.
//
// # Architecture
//
// Composite follows the explicit-result style: it either returns a brand new
// composited image or an error describing why the logo could not be applied.
// It never mutates its inputs and never degrades silently — deciding to fall
// back to the plain QR raster on failure is the caller's call, which keeps the
// "logo problems are non-fatal" policy out of the image math.
//
// The circular mask replaces the logo's alpha channel entirely: a pixel is
// opaque iff its distance from the image center is within the inscribed
// circle's radius, taken as the smaller of the two half-extents. For
// non-square logos this crops to a circle rather than fitting an ellipse;
// that matches the behavior QR scanning was tuned against and is kept as-is.
//
// # Usage
//
//	logoImg, err := overlay.Decode(file)
//	if err != nil { ... }
//
//	out, err := overlay.Composite(qrImg, overlay.Logo{
//		Image:         logoImg,
//		ScaleFraction: 0.22,
//		RoundMask:     true,
//	})
//	if err != nil {
//		out = qrImg // fall back, surface a warning
//	}
package overlay
