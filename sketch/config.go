package sketch

import (
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/sketchpad/arrow"
	"github.com/npillmayer/sketchpad/spline"
	"gopkg.in/yaml.v3"
)

// Config holds the metrics of a sketch. A configuration is usually loaded
// from YAML; keys missing from the YAML keep their default values:
//
//	width: 1000
//	height: 800
//	axes:
//	  tick-interval: 50
//	  tick-origin: 50
//	  tick-length: 5
//	  head-length: 20
//	  head-angle: 30
//	spline:
//	  samples: 200
//	  boundary: natural
//	  x-tolerance: 0
//	markers:
//	  radius: 4
//	  sides: 15
//	  pick-radius: 6
type Config struct {
	Width   int           `yaml:"width"`
	Height  int           `yaml:"height"`
	Axes    AxesConfig    `yaml:"axes"`
	Spline  SplineConfig  `yaml:"spline"`
	Markers MarkersConfig `yaml:"markers"`
}

// AxesConfig configures the coordinate cross.
type AxesConfig struct {
	TickInterval float64 `yaml:"tick-interval"`
	TickOrigin   float64 `yaml:"tick-origin"`
	TickLength   float64 `yaml:"tick-length"`
	HeadLength   float64 `yaml:"head-length"`
	HeadAngle    float64 `yaml:"head-angle"` // degrees
}

// SplineConfig configures the spline model.
type SplineConfig struct {
	Samples  int             `yaml:"samples"`
	Boundary spline.Boundary `yaml:"boundary"`
	// Control points closer than XTolerance in x are considered to share
	// their x-coordinate.
	XTolerance float64 `yaml:"x-tolerance"`
}

// MarkersConfig configures the markers of control points.
type MarkersConfig struct {
	Radius     float64 `yaml:"radius"`
	Sides      int     `yaml:"sides"`
	PickRadius float64 `yaml:"pick-radius"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Width:  1000,
		Height: 800,
		Axes: AxesConfig{
			TickInterval: arrow.DefaultTickInterval,
			TickOrigin:   arrow.DefaultTickOrigin,
			TickLength:   arrow.DefaultTickLength,
			HeadLength:   arrow.DefaultHeadLength,
			HeadAngle:    arrow.DefaultHeadAngle,
		},
		Spline: SplineConfig{
			Samples:  spline.DefaultSamples,
			Boundary: spline.Natural,
		},
		Markers: MarkersConfig{
			Radius:     4,
			Sides:      15,
			PickRadius: 6,
		},
	}
}

// LoadConfig reads a YAML configuration, on top of the defaults. Unknown
// keys are an error. An empty input yields the default configuration.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("cannot read configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	tracer().Infof("configuration loaded: %dx%d, %s splines", cfg.Width, cfg.Height, cfg.Spline.Boundary)
	return cfg, nil
}

// ErrInvalidConfig is returned for configurations with values out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// Validate checks the values of a configuration.
func (cfg Config) Validate() error {
	check := func(ok bool, format string, args ...interface{}) error {
		if ok {
			return nil
		}
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}
	return errors.Join(
		check(cfg.Width > 0 && cfg.Height > 0, "size %dx%d", cfg.Width, cfg.Height),
		check(cfg.Axes.TickInterval > 0, "tick interval %g", cfg.Axes.TickInterval),
		check(cfg.Axes.TickLength > 0, "tick length %g", cfg.Axes.TickLength),
		check(cfg.Axes.TickOrigin >= 0, "tick origin %g", cfg.Axes.TickOrigin),
		check(cfg.Axes.HeadLength > 0, "head length %g", cfg.Axes.HeadLength),
		check(cfg.Axes.HeadAngle > 0 && cfg.Axes.HeadAngle < 90, "head angle %g°", cfg.Axes.HeadAngle),
		check(cfg.Spline.Samples >= 2, "%d samples", cfg.Spline.Samples),
		check(cfg.Spline.XTolerance >= 0, "x-tolerance %g", cfg.Spline.XTolerance),
		check(cfg.Markers.Radius > 0, "marker radius %g", cfg.Markers.Radius),
		check(cfg.Markers.Sides >= 3, "%d marker sides", cfg.Markers.Sides),
		check(cfg.Markers.PickRadius >= 0, "pick radius %g", cfg.Markers.PickRadius),
	)
}

// arrowBuilder creates a builder for axes from the configuration.
func (cfg Config) arrowBuilder() *arrow.Builder {
	return &arrow.Builder{
		HeadLength:   cfg.Axes.HeadLength,
		HeadAngle:    cfg.Axes.HeadAngle,
		TickOrigin:   cfg.Axes.TickOrigin,
		TickInterval: cfg.Axes.TickInterval,
		TickLength:   cfg.Axes.TickLength,
	}
}
