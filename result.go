package qrlab

import (
	"strings"

	"github.com/google/uuid"

	"github.com/qrlab/qrlab/pkg/overlay"
	"github.com/qrlab/qrlab/pkg/payload"
	"github.com/qrlab/qrlab/pkg/render"
)

// Export is one downloadable artifact produced from a Result.
type Export struct {
	Data     []byte
	MIME     string
	Filename string
	// Warning is set when the artifact was produced in a degraded way, such
	// as a logo overlay that could not be applied. It is informational and
	// never accompanies an error.
	Warning string
}

// Result is an immutable, successfully formatted generation: the payload
// string plus everything needed to export it in any format on demand.
type Result struct {
	id      uuid.UUID
	payload string
	opts    render.Options
	logo    *overlay.Logo
}

// Generate formats content into its payload string and captures the style and
// optional logo for later export. A blank payload refuses generation with
// ErrEmptyPayload.
func Generate(content payload.Content, opts render.Options, logo *overlay.Logo) (*Result, error) {
	p := payload.Build(content)
	if strings.TrimSpace(p) == "" {
		return nil, ErrEmptyPayload
	}
	return &Result{id: uuid.New(), payload: p, opts: opts, logo: logo}, nil
}

func (r *Result) ID() uuid.UUID           { return r.id }
func (r *Result) Payload() string         { return r.payload }
func (r *Result) Options() render.Options { return r.opts }

// PNG exports the raster artifact. This is the only path that applies the
// logo overlay; if compositing fails the plain QR raster is exported and the
// failure is reported via Export.Warning rather than an error.
func (r *Result) PNG() (Export, error) {
	img, err := render.Image(r.payload, r.opts)
	if err != nil {
		return Export{}, err
	}

	var warning string
	if r.logo != nil {
		composited, err := overlay.Composite(img, *r.logo)
		if err != nil {
			warning = "logo overlay skipped: " + err.Error()
		} else {
			img = composited
		}
	}

	data, err := render.EncodePNG(img)
	if err != nil {
		return Export{}, err
	}
	return Export{Data: data, MIME: "image/png", Filename: "qr.png", Warning: warning}, nil
}

// SVG exports the vector artifact, always without the logo overlay.
func (r *Result) SVG() (Export, error) {
	data, err := render.SVG(r.payload, r.opts)
	if err != nil {
		return Export{}, err
	}
	return Export{Data: data, MIME: "image/svg+xml", Filename: "qr.svg"}, nil
}

// PDF exports the document artifact, always without the logo overlay.
func (r *Result) PDF() (Export, error) {
	data, err := render.PDF(r.payload, r.opts)
	if err != nil {
		return Export{}, err
	}
	return Export{Data: data, MIME: "application/pdf", Filename: "qr.pdf"}, nil
}
