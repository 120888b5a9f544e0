// Package sensor provides the observers consumed by the bfield pipeline:
// sensors carrying a local pixel grid along their own path, plus the
// formatting helpers that turn raw global positions into static
// single-pixel observers.
package sensor

import (
	"errors"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/fluxline/fluxline/internal/bfield"
)

var (
	// ErrPixels indicates a pixel grid whose point count does not match its shape.
	ErrPixels = errors.New("sensor: pixel count does not match grid shape")

	// ErrPath indicates an empty or ragged path.
	ErrPath = errors.New("sensor: path needs equal, nonzero position and orientation counts")
)

// Sensor samples the field at its local pixel offsets, transformed by its
// position and orientation at every path step. A fresh sensor sits at the
// origin with unit orientation and a single pixel at its own origin.
type Sensor struct {
	path   bfield.Path
	pixels bfield.PixelGrid
}

// New returns a static sensor with a single pixel at the origin.
func New() *Sensor {
	return &Sensor{
		path:   bfield.StaticPath(r3.Vec{}, bfield.IdentityRotation()),
		pixels: bfield.SinglePixel(),
	}
}

// At returns a static single-pixel sensor at the given global position.
// This is the canonical formatting of a raw observation point.
func At(pos r3.Vec) *Sensor {
	s := New()
	s.path = bfield.StaticPath(pos, bfield.IdentityRotation())
	return s
}

// FromPoints formats raw global positions as one observer each.
func FromPoints(points []r3.Vec) []bfield.Observer {
	out := make([]bfield.Observer, len(points))
	for i, p := range points {
		out[i] = At(p)
	}
	return out
}

func (s *Sensor) Path() bfield.Path        { return s.path }
func (s *Sensor) Pixels() bfield.PixelGrid { return s.pixels }

// SetPixels installs a local pixel grid. shape holds the leading grid
// axes; points is its row-major flattening. A nil shape means a single
// point.
func (s *Sensor) SetPixels(shape []int, points []r3.Vec) error {
	g := bfield.PixelGrid{Shape: append([]int(nil), shape...), Points: append([]r3.Vec(nil), points...)}
	if g.NumPixels() != len(g.Points) {
		return ErrPixels
	}
	s.pixels = g
	return nil
}

// SetPixelLine is a convenience for a 1D line of n pixels.
func (s *Sensor) SetPixelLine(points []r3.Vec) error {
	return s.SetPixels([]int{len(points)}, points)
}

// SetPath replaces the sensor's path with a copy of p.
func (s *Sensor) SetPath(p bfield.Path) error {
	if p.Len() == 0 || len(p.Pos) != len(p.Ori) {
		return ErrPath
	}
	s.path = bfield.Path{
		Pos: append([]r3.Vec(nil), p.Pos...),
		Ori: append([]r3.Rotation(nil), p.Ori...),
	}
	return nil
}

// SetPosition collapses the path to one static state at pos, keeping the
// current final orientation.
func (s *Sensor) SetPosition(pos r3.Vec) {
	ori := s.path.Ori[len(s.path.Ori)-1]
	s.path = bfield.StaticPath(pos, ori)
}

// SetOrientation collapses the path to one static state with the given
// orientation, keeping the current final position.
func (s *Sensor) SetOrientation(ori r3.Rotation) {
	pos := s.path.Pos[len(s.path.Pos)-1]
	s.path = bfield.StaticPath(pos, ori)
}

// Translate shifts every path step by d.
func (s *Sensor) Translate(d r3.Vec) {
	for i := range s.path.Pos {
		s.path.Pos[i] = r3.Add(s.path.Pos[i], d)
	}
}

// Rotate composes r onto the orientation of every path step.
func (s *Sensor) Rotate(r r3.Rotation) {
	for i := range s.path.Ori {
		s.path.Ori[i] = r3.Rotation(quat.Mul(quat.Number(r), quat.Number(s.path.Ori[i])))
	}
}
