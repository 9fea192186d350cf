package render

import (
	"bytes"

	svg "github.com/ajstarks/svgo"
)

// SVG renders content as a vector document. Geometry matches the raster path:
// one ModuleScale-sized square per module, QuietZone modules of background on
// every side. Logo overlays are raster-only and never appear in SVG output.
func SVG(content string, opts Options) ([]byte, error) {
	opts = opts.normalized()
	matrix, err := Matrix(content, opts.Level)
	if err != nil {
		return nil, err
	}

	scale := opts.ModuleScale
	total := (len(matrix) + 2*opts.QuietZone) * scale
	offset := opts.QuietZone * scale
	fg := "fill:" + HexColor(opts.Foreground)

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(total, total)
	canvas.Rect(0, 0, total, total, "fill:"+HexColor(opts.Background))
	for y, row := range matrix {
		for _, r := range darkRuns(row) {
			canvas.Rect(offset+r.start*scale, offset+y*scale, r.length*scale, scale, fg)
		}
	}
	canvas.End()
	return buf.Bytes(), nil
}

type run struct {
	start, length int
}

// darkRuns merges consecutive dark modules of a row into horizontal runs,
// keeping the output small for dense symbols.
func darkRuns(row []bool) []run {
	var runs []run
	for x := 0; x < len(row); {
		if !row[x] {
			x++
			continue
		}
		start := x
		for x < len(row) && row[x] {
			x++
		}
		runs = append(runs, run{start: start, length: x - start})
	}
	return runs
}
