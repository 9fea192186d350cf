package render

import (
	"bytes"
	"errors"

	"github.com/go-pdf/fpdf"
)

// PDF renders content as a single-page PDF document sized to the symbol, one
// point per pixel of the raster geometry. Like SVG, the PDF path never
// carries a logo overlay.
func PDF(content string, opts Options) ([]byte, error) {
	opts = opts.normalized()
	matrix, err := Matrix(content, opts.Level)
	if err != nil {
		return nil, err
	}

	scale := float64(opts.ModuleScale)
	total := (float64(len(matrix)) + 2*float64(opts.QuietZone)) * scale
	offset := float64(opts.QuietZone) * scale

	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: total, Ht: total},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	doc.SetFillColor(rgb8(opts.Background))
	doc.Rect(0, 0, total, total, "F")

	doc.SetFillColor(rgb8(opts.Foreground))
	for y, row := range matrix {
		for _, r := range darkRuns(row) {
			doc.Rect(offset+float64(r.start)*scale, offset+float64(y)*scale, float64(r.length)*scale, scale, "F")
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, errors.Join(ErrEncode, err)
	}
	return buf.Bytes(), nil
}
