// Package config describes evaluation scenes: the sources, the sensors
// and the output options, loadable from YAML.
package config

import (
	"fmt"
	"os"

	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"

	"github.com/fluxline/fluxline/internal/bfield"
	"github.com/fluxline/fluxline/internal/magnet"
	"github.com/fluxline/fluxline/internal/sensor"
)

const (
	DefaultField     = "B"
	DefaultScanStart = -5.0
	DefaultScanStop  = 5.0
	DefaultScanSteps = 120
)

type Config struct {
	Field   string         `yaml:"field"`
	SumUp   bool           `yaml:"sumup"`
	Squeeze bool           `yaml:"squeeze"`
	Sources []SourceConfig `yaml:"sources"`
	Sensors []SensorConfig `yaml:"sensors"`
	Scan    ScanConfig     `yaml:"scan"`
}

// SourceConfig is one source entry. Kind selects which geometry fields
// apply; lengths in mm, magnetization in mT, currents in A, moments in
// mT·mm³, angles in degrees.
type SourceConfig struct {
	Kind          string       `yaml:"kind"`
	Magnetization [3]float64   `yaml:"magnetization,omitempty"`
	Moment        [3]float64   `yaml:"moment,omitempty"`
	Current       float64      `yaml:"current,omitempty"`
	Dimension     [3]float64   `yaml:"dimension,omitempty"` // cuboid edges
	Diameter      float64      `yaml:"diameter,omitempty"`
	Height        float64      `yaml:"height,omitempty"`
	D1            float64      `yaml:"d1,omitempty"` // segment inner diameter
	D2            float64      `yaml:"d2,omitempty"` // segment outer diameter
	Phi1          float64      `yaml:"phi1,omitempty"`
	Phi2          float64      `yaml:"phi2,omitempty"`
	Vertices      [][3]float64 `yaml:"vertices,omitempty"`
	Position      [3]float64   `yaml:"position,omitempty"`
	Path          [][3]float64 `yaml:"path,omitempty"` // overrides position when set
}

type SensorConfig struct {
	Position [3]float64   `yaml:"position"`
	Pixels   [][3]float64 `yaml:"pixels,omitempty"`
	Path     [][3]float64 `yaml:"path,omitempty"`
}

// ScanConfig describes the straight probe line used by the graph and
// live commands: Steps points from Start to Stop along Axis.
type ScanConfig struct {
	Axis  string  `yaml:"axis"`
	Start float64 `yaml:"start"`
	Stop  float64 `yaml:"stop"`
	Steps int     `yaml:"steps"`
	// Offset positions the scan line off the chosen axis.
	Offset [3]float64 `yaml:"offset,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Field:   DefaultField,
		Squeeze: true,
		SumUp:   true,
		Sources: []SourceConfig{{
			Kind:          "cuboid",
			Magnetization: [3]float64{0, 0, 1000},
			Dimension:     [3]float64{1, 1, 1},
		}},
		Sensors: []SensorConfig{{Position: [3]float64{0, 0, 2}}},
		Scan: ScanConfig{
			Axis:  "z",
			Start: DefaultScanStart,
			Stop:  DefaultScanStop,
			Steps: DefaultScanSteps,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	cfg.Sources = nil
	cfg.Sensors = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// FieldType maps the config string onto the evaluation field selector.
func (c *Config) FieldType() (bfield.FieldType, error) {
	switch c.Field {
	case "B", "b", "":
		return bfield.FieldB, nil
	case "H", "h":
		return bfield.FieldH, nil
	}
	return 0, fmt.Errorf("config: unknown field %q (want B or H)", c.Field)
}

// Options returns the output options selected by the config.
func (c *Config) Options() bfield.Options {
	return bfield.Options{SumUp: c.SumUp, Squeeze: c.Squeeze}
}

// BuildSources constructs the configured source objects.
func (c *Config) BuildSources() ([]bfield.Entry, error) {
	out := make([]bfield.Entry, 0, len(c.Sources))
	for i, sc := range c.Sources {
		src, err := buildSource(sc)
		if err != nil {
			return nil, fmt.Errorf("config: source %d: %w", i, err)
		}
		out = append(out, src)
	}
	return out, nil
}

// BuildSensors constructs the configured sensors.
func (c *Config) BuildSensors() ([]bfield.Observer, error) {
	out := make([]bfield.Observer, 0, len(c.Sensors))
	for i, sc := range c.Sensors {
		s := sensor.At(vec(sc.Position))
		if len(sc.Pixels) > 0 {
			if err := s.SetPixelLine(vecs(sc.Pixels)); err != nil {
				return nil, fmt.Errorf("config: sensor %d: %w", i, err)
			}
		}
		if len(sc.Path) > 0 {
			if err := s.SetPath(straightPath(sc.Path)); err != nil {
				return nil, fmt.Errorf("config: sensor %d: %w", i, err)
			}
		}
		out = append(out, s)
	}
	return out, nil
}

type mover interface {
	SetPosition(r3.Vec)
	SetPath(bfield.Path) error
}

func buildSource(sc SourceConfig) (bfield.Source, error) {
	var (
		src bfield.Source
		mv  mover
		err error
	)
	switch sc.Kind {
	case "cuboid":
		var c *magnet.Cuboid
		c, err = magnet.NewCuboid(vec(sc.Magnetization), vec(sc.Dimension))
		src, mv = c, c
	case "cylinder":
		var c *magnet.Cylinder
		c, err = magnet.NewCylinder(vec(sc.Magnetization), sc.Diameter, sc.Height)
		src, mv = c, c
	case "cylinder_segment":
		var c *magnet.CylinderSegment
		c, err = magnet.NewCylinderSegment(vec(sc.Magnetization), sc.D1, sc.D2, sc.Height, sc.Phi1, sc.Phi2)
		src, mv = c, c
	case "sphere":
		var c *magnet.Sphere
		c, err = magnet.NewSphere(vec(sc.Magnetization), sc.Diameter)
		src, mv = c, c
	case "dipole":
		var c *magnet.Dipole
		c, err = magnet.NewDipole(vec(sc.Moment))
		src, mv = c, c
	case "loop":
		var c *magnet.Loop
		c, err = magnet.NewLoop(sc.Current, sc.Diameter)
		src, mv = c, c
	case "polyline":
		var c *magnet.Polyline
		c, err = magnet.NewPolyline(sc.Current, vecs(sc.Vertices))
		src, mv = c, c
	default:
		return nil, fmt.Errorf("unknown kind %q", sc.Kind)
	}
	if err != nil {
		return nil, err
	}
	if len(sc.Path) > 0 {
		if err := mv.SetPath(straightPath(sc.Path)); err != nil {
			return nil, err
		}
	} else if sc.Position != ([3]float64{}) {
		mv.SetPosition(vec(sc.Position))
	}
	return src, nil
}

// ScanPoints expands the scan spec into probe positions and the scalar
// coordinate along the chosen axis.
func (c *Config) ScanPoints() ([]r3.Vec, []float64, error) {
	n := c.Scan.Steps
	if n < 2 {
		return nil, nil, fmt.Errorf("config: scan needs at least 2 steps, got %d", n)
	}
	var axis r3.Vec
	switch c.Scan.Axis {
	case "x":
		axis = r3.Vec{X: 1}
	case "y":
		axis = r3.Vec{Y: 1}
	case "z", "":
		axis = r3.Vec{Z: 1}
	default:
		return nil, nil, fmt.Errorf("config: unknown scan axis %q", c.Scan.Axis)
	}
	off := vec(c.Scan.Offset)
	pts := make([]r3.Vec, n)
	coords := make([]float64, n)
	for i := 0; i < n; i++ {
		u := c.Scan.Start + (c.Scan.Stop-c.Scan.Start)*float64(i)/float64(n-1)
		coords[i] = u
		pts[i] = r3.Add(off, r3.Scale(u, axis))
	}
	return pts, coords, nil
}

func vec(a [3]float64) r3.Vec {
	return r3.Vec{X: a[0], Y: a[1], Z: a[2]}
}

func vecs(a [][3]float64) []r3.Vec {
	out := make([]r3.Vec, len(a))
	for i, v := range a {
		out[i] = vec(v)
	}
	return out
}

func straightPath(steps [][3]float64) bfield.Path {
	p := bfield.Path{
		Pos: make([]r3.Vec, len(steps)),
		Ori: make([]r3.Rotation, len(steps)),
	}
	for i, s := range steps {
		p.Pos[i] = vec(s)
		p.Ori[i] = bfield.IdentityRotation()
	}
	return p
}
