package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/mandel/internal/fractal"
	"github.com/san-kum/mandel/internal/imageio"
	"github.com/san-kum/mandel/internal/render"
)

const (
	DefaultOutput     = "mandel.png"
	DefaultResolution = "1000x750"
	DefaultUpperLeft  = "-1.20,0.35"
	DefaultLowerRight = "-1.0,0.20"
	DefaultLimit      = fractal.DefaultLimit
)

var (
	ErrBadResolution = errors.New("config: resolution must be <width>x<height> with positive integers")
	ErrBadCorner     = errors.New("config: corner must be <real>,<imag>")
)

// Config describes one render. Resolution and corners keep the textual
// grammar of the command line so that files and flags read the same.
type Config struct {
	Output     string `yaml:"output"`
	Resolution string `yaml:"resolution"`
	UpperLeft  string `yaml:"upper_left"`
	LowerRight string `yaml:"lower_right"`
	Limit      int    `yaml:"limit"`
	Workers    int    `yaml:"workers"`
	BandRows   int    `yaml:"band_rows"`
	Format     string `yaml:"format,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Output:     DefaultOutput,
		Resolution: DefaultResolution,
		UpperLeft:  DefaultUpperLeft,
		LowerRight: DefaultLowerRight,
		Limit:      DefaultLimit,
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path on top of base: keys present in the file replace the
// values of base, the others are kept. base is modified and returned.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, base); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return base, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Job parses the textual fields and validates the result.
func (c *Config) Job() (render.Job, error) {
	bounds, ok := fractal.ParseBounds(c.Resolution)
	if !ok {
		return render.Job{}, fmt.Errorf("%w: %q", ErrBadResolution, c.Resolution)
	}
	ul, ok := fractal.ParseComplex(c.UpperLeft)
	if !ok {
		return render.Job{}, fmt.Errorf("%w: upper left %q", ErrBadCorner, c.UpperLeft)
	}
	lr, ok := fractal.ParseComplex(c.LowerRight)
	if !ok {
		return render.Job{}, fmt.Errorf("%w: lower right %q", ErrBadCorner, c.LowerRight)
	}

	job := render.Job{
		Bounds:   bounds,
		Viewport: fractal.Viewport{UpperLeft: ul, LowerRight: lr},
		Limit:    c.Limit,
	}
	if err := job.Validate(); err != nil {
		return render.Job{}, err
	}
	return job, nil
}

// OutputFormat is the configured format, or the one implied by Output.
func (c *Config) OutputFormat() (imageio.Format, error) {
	if c.Format != "" {
		return imageio.ParseFormat(c.Format)
	}
	return imageio.FormatFromPath(c.Output)
}

// RendererOptions turns the concurrency settings into render options.
func (c *Config) RendererOptions() []render.Option {
	return []render.Option{
		render.WithWorkers(c.Workers),
		render.WithBandRows(c.BandRows),
	}
}
