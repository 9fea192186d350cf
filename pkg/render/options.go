package render

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

// Level is a QR error-correction level. Higher levels trade data capacity for
// resilience to damage or occlusion (relevant when overlaying a logo).
type Level string

const (
	LevelL Level = "L"
	LevelM Level = "M"
	LevelQ Level = "Q"
	LevelH Level = "H"
)

// ParseLevel maps a case-insensitive level name to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "L":
		return LevelL, nil
	case "M":
		return LevelM, nil
	case "Q":
		return LevelQ, nil
	case "H":
		return LevelH, nil
	default:
		return "", errors.Join(ErrInvalidLevel, fmt.Errorf("got %q", s))
	}
}

func (l Level) recovery() skipqrcode.RecoveryLevel {
	switch l {
	case LevelL:
		return skipqrcode.Low
	case LevelM:
		return skipqrcode.Medium
	case LevelQ:
		return skipqrcode.High
	default:
		return skipqrcode.Highest
	}
}

// Default style values, matching the generator defaults surfaced in the UI.
const (
	DefaultModuleScale = 10
	DefaultQuietZone   = 4
)

// Options control how a QR symbol is styled and rasterized.
type Options struct {
	// Level is the error-correction level; defaults to H.
	Level Level
	// ModuleScale is the edge length of one module in pixels (points for
	// PDF); values below 1 fall back to DefaultModuleScale.
	ModuleScale int
	// QuietZone is the blank border around the symbol, in modules; negative
	// values are treated as 0.
	QuietZone int
	// Foreground and Background are the module and canvas colors; nil falls
	// back to near-black on white.
	Foreground color.Color
	Background color.Color
}

// DefaultOptions returns the generator defaults: level H, 10 px modules, a
// 4-module quiet zone, near-black (#111827) on white.
func DefaultOptions() Options {
	return Options{
		Level:       LevelH,
		ModuleScale: DefaultModuleScale,
		QuietZone:   DefaultQuietZone,
		Foreground:  color.RGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xFF},
		Background:  color.White,
	}
}

// normalized fills unset fields with defaults so every renderer sees a
// complete option set.
func (o Options) normalized() Options {
	def := DefaultOptions()
	if o.Level == "" {
		o.Level = def.Level
	}
	if o.ModuleScale < 1 {
		o.ModuleScale = def.ModuleScale
	}
	if o.QuietZone < 0 {
		o.QuietZone = 0
	}
	if o.Foreground == nil {
		o.Foreground = def.Foreground
	}
	if o.Background == nil {
		o.Background = def.Background
	}
	return o
}

// ParseHexColor parses #RGB or #RRGGBB (leading # optional) into an opaque
// color.
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return color.RGBA{}, errors.Join(ErrInvalidColor, fmt.Errorf("got %q", s))
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, errors.Join(ErrInvalidColor, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}

// HexColor formats a color as #RRGGBB, discarding alpha.
func HexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02X%02X%02X", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

func rgb8(c color.Color) (int, int, int) {
	r, g, b, _ := c.RGBA()
	return int(r >> 8), int(g >> 8), int(b >> 8)
}
