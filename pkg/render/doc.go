// Package render turns a payload string into QR code artifacts: a module
// matrix, a styled raster image, and PNG, SVG, and PDF byte streams.
//
// # Architecture
//
// Symbol encoding is delegated to github.com/skip2/go-qrcode; this package
// owns everything around it — style options (error-correction level, module
// scale, quiet zone, colors), quiet-zone padding, and the three export
// encoders. PNG output goes through the raster path so a logo overlay can be
// composited onto it by the caller; SVG and PDF are drawn directly from the
// module matrix as vector rectangles and never carry a logo.
//
// # Usage
//
//	opts := render.DefaultOptions()
//	opts.Level = render.LevelQ
//
//	png, err := render.PNG("https://example.com", opts)
//	svg, err := render.SVG("https://example.com", opts)
//	pdf, err := render.PDF("https://example.com", opts)
//
// All functions are pure with respect to their inputs and safe for concurrent
// use.
package render
