package qrlab_test

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qrlab/qrlab"
	"github.com/qrlab/qrlab/pkg/overlay"
	"github.com/qrlab/qrlab/pkg/payload"
	"github.com/qrlab/qrlab/pkg/render"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	t.Run("refuses a blank payload", func(t *testing.T) {
		t.Parallel()
		_, err := qrlab.Generate(payload.Text{Text: "   \t\n"}, render.DefaultOptions(), nil)
		assert.ErrorIs(t, err, qrlab.ErrEmptyPayload)
	})

	t.Run("keeps the formatted payload and a fresh id", func(t *testing.T) {
		t.Parallel()
		a, err := qrlab.Generate(payload.Phone{Number: "+15551234567"}, render.DefaultOptions(), nil)
		require.NoError(t, err)
		b, err := qrlab.Generate(payload.Phone{Number: "+15551234567"}, render.DefaultOptions(), nil)
		require.NoError(t, err)

		assert.Equal(t, "tel:+15551234567", a.Payload())
		assert.NotEqual(t, a.ID(), b.ID())
	})
}

func TestResultExports(t *testing.T) {
	t.Parallel()

	opts := render.Options{Level: render.LevelH, ModuleScale: 4, QuietZone: 2}

	t.Run("PNG without logo", func(t *testing.T) {
		t.Parallel()
		res, err := qrlab.Generate(payload.Text{Text: "https://example.com"}, opts, nil)
		require.NoError(t, err)

		export, err := res.PNG()
		require.NoError(t, err)
		assert.Equal(t, "image/png", export.MIME)
		assert.Equal(t, "qr.png", export.Filename)
		assert.Empty(t, export.Warning)

		_, err = png.Decode(bytes.NewReader(export.Data))
		require.NoError(t, err, "export must be a valid PNG")
	})

	t.Run("PNG composites the logo", func(t *testing.T) {
		t.Parallel()
		logo := &overlay.Logo{
			Image:         imaging.New(32, 32, color.NRGBA{R: 0xFF, A: 0xFF}),
			ScaleFraction: 0.2,
		}
		res, err := qrlab.Generate(payload.Text{Text: "https://example.com"}, opts, logo)
		require.NoError(t, err)

		export, err := res.PNG()
		require.NoError(t, err)
		assert.Empty(t, export.Warning)

		img, err := png.Decode(bytes.NewReader(export.Data))
		require.NoError(t, err)
		b := img.Bounds()
		r, g, bl, _ := img.At(b.Dx()/2, b.Dy()/2).RGBA()
		assert.Equal(t, uint32(0xFFFF), r, "center must show the red logo")
		assert.Zero(t, g)
		assert.Zero(t, bl)
	})

	t.Run("logo failure degrades to the plain raster with a warning", func(t *testing.T) {
		t.Parallel()
		bad := &overlay.Logo{Image: nil, ScaleFraction: 0.2}
		res, err := qrlab.Generate(payload.Text{Text: "https://example.com"}, opts, bad)
		require.NoError(t, err)

		export, err := res.PNG()
		require.NoError(t, err, "logo problems are never fatal")
		assert.NotEmpty(t, export.Warning)

		plain, err := render.PNG(res.Payload(), res.Options())
		require.NoError(t, err)
		assert.Equal(t, plain, export.Data, "degraded export must equal the un-logoed raster")
	})

	t.Run("SVG and PDF never carry the logo", func(t *testing.T) {
		t.Parallel()
		logo := &overlay.Logo{
			Image:         imaging.New(32, 32, color.NRGBA{R: 0xFF, A: 0xFF}),
			ScaleFraction: 0.2,
		}
		res, err := qrlab.Generate(payload.Text{Text: "https://example.com"}, opts, logo)
		require.NoError(t, err)

		svgExport, err := res.SVG()
		require.NoError(t, err)
		assert.Equal(t, "image/svg+xml", svgExport.MIME)
		assert.Equal(t, "qr.svg", svgExport.Filename)

		bare, err := qrlab.Generate(payload.Text{Text: "https://example.com"}, opts, nil)
		require.NoError(t, err)
		bareSVG, err := bare.SVG()
		require.NoError(t, err)
		assert.Equal(t, bareSVG.Data, svgExport.Data)

		pdfExport, err := res.PDF()
		require.NoError(t, err)
		assert.Equal(t, "application/pdf", pdfExport.MIME)
		assert.Equal(t, "qr.pdf", pdfExport.Filename)
		assert.True(t, bytes.HasPrefix(pdfExport.Data, []byte("%PDF-")))
	})
}

func TestSession(t *testing.T) {
	t.Parallel()

	t.Run("empty until the first generation", func(t *testing.T) {
		t.Parallel()
		s := qrlab.NewSession()
		_, ok := s.Last()
		assert.False(t, ok)
	})

	t.Run("stores the latest successful result", func(t *testing.T) {
		t.Parallel()
		s := qrlab.NewSession()

		first, err := s.Generate(payload.Text{Text: "first"}, render.DefaultOptions(), nil)
		require.NoError(t, err)
		second, err := s.Generate(payload.Text{Text: "second"}, render.DefaultOptions(), nil)
		require.NoError(t, err)

		last, ok := s.Last()
		require.True(t, ok)
		assert.Equal(t, second.ID(), last.ID())
		assert.NotEqual(t, first.ID(), last.ID())
	})

	t.Run("failed generation keeps the previous result", func(t *testing.T) {
		t.Parallel()
		s := qrlab.NewSession()
		res, err := s.Generate(payload.Text{Text: "keep me"}, render.DefaultOptions(), nil)
		require.NoError(t, err)

		_, err = s.Generate(payload.Text{}, render.DefaultOptions(), nil)
		require.ErrorIs(t, err, qrlab.ErrEmptyPayload)

		last, ok := s.Last()
		require.True(t, ok)
		assert.Equal(t, res.ID(), last.ID())
	})
}
