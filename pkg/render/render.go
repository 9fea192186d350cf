package render

import (
	"bytes"
	"errors"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
	skipqrcode "github.com/skip2/go-qrcode"
)

// Matrix encodes content at the given error-correction level and returns the
// module matrix (true = dark module), without a quiet zone.
func Matrix(content string, level Level) ([][]bool, error) {
	q, err := newSymbol(content, level)
	if err != nil {
		return nil, err
	}
	return q.Bitmap(), nil
}

// Image rasterizes content into a styled QR image: ModuleScale pixels per
// module, quiet-zone padding filled with the background color.
func Image(content string, opts Options) (image.Image, error) {
	opts = opts.normalized()
	q, err := newSymbol(content, opts.Level)
	if err != nil {
		return nil, err
	}
	q.ForegroundColor = opts.Foreground
	q.BackgroundColor = opts.Background

	img := q.Image(-opts.ModuleScale)
	if opts.QuietZone == 0 {
		return img, nil
	}

	pad := opts.QuietZone * opts.ModuleScale
	b := img.Bounds()
	canvas := imaging.New(b.Dx()+2*pad, b.Dy()+2*pad, opts.Background)
	return imaging.PasteCenter(canvas, img), nil
}

// PNG renders content to PNG bytes. The logo overlay, when any, is applied by
// the caller on the Image result before encoding.
func PNG(content string, opts Options) ([]byte, error) {
	img, err := Image(content, opts)
	if err != nil {
		return nil, err
	}
	return EncodePNG(img)
}

// EncodePNG encodes an image to PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Join(ErrEncode, err)
	}
	return buf.Bytes(), nil
}

func newSymbol(content string, level Level) (*skipqrcode.QRCode, error) {
	q, err := skipqrcode.New(content, level.recovery())
	if err != nil {
		return nil, errors.Join(ErrEncode, err)
	}
	// The quiet zone is applied by this package so its width stays
	// configurable; the library border is fixed at 4 modules.
	q.DisableBorder = true
	return q, nil
}
