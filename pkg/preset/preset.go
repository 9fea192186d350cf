package preset

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/qrlab/qrlab/pkg/render"
)

var (
	// ErrParse is returned when the document is not valid YAML.
	ErrParse = errors.New("failed to parse presets")
	// ErrInvalidPreset is returned when a preset holds an unknown level or a
	// malformed color.
	ErrInvalidPreset = errors.New("invalid preset")
)

// spec is the YAML shape of a single preset; zero values mean "use default".
type spec struct {
	Level      string `yaml:"level"`
	Scale      int    `yaml:"scale"`
	QuietZone  int    `yaml:"quiet_zone"`
	Foreground string `yaml:"foreground"`
	Background string `yaml:"background"`
}

// Parse decodes a YAML document of named presets into render options.
func Parse(data []byte) (map[string]render.Options, error) {
	var raw map[string]spec
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrParse, err)
	}

	presets := make(map[string]render.Options, len(raw))
	for name, s := range raw {
		opts, err := s.options()
		if err != nil {
			return nil, errors.Join(ErrInvalidPreset, fmt.Errorf("preset %q: %w", name, err))
		}
		presets[name] = opts
	}
	return presets, nil
}

// Load reads and parses a preset file.
func Load(path string) (map[string]render.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func (s spec) options() (render.Options, error) {
	opts := render.DefaultOptions()
	if s.Level != "" {
		lvl, err := render.ParseLevel(s.Level)
		if err != nil {
			return render.Options{}, err
		}
		opts.Level = lvl
	}
	if s.Scale > 0 {
		opts.ModuleScale = s.Scale
	}
	if s.QuietZone > 0 {
		opts.QuietZone = s.QuietZone
	}
	if s.Foreground != "" {
		c, err := render.ParseHexColor(s.Foreground)
		if err != nil {
			return render.Options{}, err
		}
		opts.Foreground = c
	}
	if s.Background != "" {
		c, err := render.ParseHexColor(s.Background)
		if err != nil {
			return render.Options{}, err
		}
		opts.Background = c
	}
	return opts, nil
}
