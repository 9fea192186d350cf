package overlay

import (
	"errors"
	"image"
	"io"

	"github.com/disintegration/imaging"
)

// Logo describes an overlay to composite onto a QR raster.
type Logo struct {
	// Image is the decoded logo.
	Image image.Image
	// ScaleFraction is the target logo width as a fraction of the base
	// image's width, in (0, 1].
	ScaleFraction float64
	// RoundMask crops the logo to its inscribed circle.
	RoundMask bool
}

// Decode reads a logo image (PNG or JPEG) from r.
func Decode(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, errors.Join(ErrDecode, err)
	}
	return img, nil
}

// Composite returns a new image with the logo masked, resized, and
// alpha-blended centered on top of base. Inputs are not mutated. On error the
// caller chooses the fallback, typically the unmodified base.
func Composite(base image.Image, logo Logo) (*image.NRGBA, error) {
	if logo.Image == nil {
		return nil, ErrNoImage
	}
	if logo.ScaleFraction <= 0 || logo.ScaleFraction > 1 {
		return nil, ErrScaleFraction
	}

	src := imaging.Clone(logo.Image)
	lw, lh := src.Bounds().Dx(), src.Bounds().Dy()
	if lw == 0 || lh == 0 {
		return nil, ErrLogoTooSmall
	}
	if logo.RoundMask {
		applyCircleMask(src)
	}

	bw, bh := base.Bounds().Dx(), base.Bounds().Dy()
	targetW := int(float64(bw) * logo.ScaleFraction)
	// Height follows from the width alone, preserving aspect ratio.
	targetH := targetW * lh / lw
	if targetW < 1 || targetH < 1 {
		return nil, ErrLogoTooSmall
	}
	resized := imaging.Resize(src, targetW, targetH, imaging.Lanczos)

	out := imaging.Clone(base)
	offset := image.Pt((bw-targetW)/2, (bh-targetH)/2)
	return imaging.Overlay(out, resized, offset, 1.0), nil
}

// applyCircleMask replaces the alpha channel in place: pixels within the
// inscribed circle become fully opaque, everything else fully transparent.
// The radius is the smaller half-extent, so non-square images are cropped to
// a circle rather than an ellipse.
func applyCircleMask(img *image.NRGBA) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	cx := float64(w-1) / 2
	cy := float64(h-1) / 2
	radius := cx
	if cy < radius {
		radius = cy
	}
	r2 := radius * radius

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			i := y*img.Stride + x*4
			if dx*dx+dy*dy <= r2 {
				img.Pix[i+3] = 0xFF
			} else {
				img.Pix[i+3] = 0x00
			}
		}
	}
}
