// Package preset loads named QR style presets from a YAML document, so an
// operator can ship a curated set of looks (level, module scale, quiet zone,
// colors) and the generate endpoint can reference them by name.
//
//	# presets.yaml
//	print:
//	  level: H
//	  scale: 16
//	  quiet_zone: 4
//	badge:
//	  level: Q
//	  scale: 8
//	  foreground: "#1D4ED8"
//	  background: "#FFFFFF"
//
// Omitted fields fall back to the render defaults. Unknown levels and
// malformed colors fail the load; a half-valid preset file is a configuration
// error, not something to paper over at request time.
package preset
