package magnet

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/fluxline/fluxline/internal/bfield"
)

// Cuboid is a homogeneously magnetized box. Magnetization in mT, edge
// lengths in mm.
type Cuboid struct {
	object
	mag r3.Vec
	dim r3.Vec
}

func NewCuboid(mag, dim r3.Vec) (*Cuboid, error) {
	if dim.X <= 0 || dim.Y <= 0 || dim.Z <= 0 {
		return nil, ErrDimension
	}
	if err := checkExcitation(mag); err != nil {
		return nil, err
	}
	return &Cuboid{object: newObject(), mag: mag, dim: dim}, nil
}

func (c *Cuboid) Kind() bfield.Kind     { return bfield.KindCuboid }
func (c *Cuboid) Magnetization() r3.Vec { return c.mag }
func (c *Cuboid) Dimension() r3.Vec     { return c.dim }

// Cylinder is a homogeneously magnetized full cylinder with diameter and
// height in mm, axis along local z.
type Cylinder struct {
	object
	mag r3.Vec
	dim [2]float64
}

func NewCylinder(mag r3.Vec, diameter, height float64) (*Cylinder, error) {
	if diameter <= 0 || height <= 0 {
		return nil, ErrDimension
	}
	if err := checkExcitation(mag); err != nil {
		return nil, err
	}
	return &Cylinder{object: newObject(), mag: mag, dim: [2]float64{diameter, height}}, nil
}

func (c *Cylinder) Kind() bfield.Kind     { return bfield.KindCylinder }
func (c *Cylinder) Magnetization() r3.Vec { return c.mag }
func (c *Cylinder) Dimension() [2]float64 { return c.dim }

// CylinderSegment is a homogeneously magnetized annular cylinder section:
// inner diameter d1, outer diameter d2, height h in mm, section angles
// phi1 < phi2 in degrees.
type CylinderSegment struct {
	object
	mag r3.Vec
	dim [5]float64
}

func NewCylinderSegment(mag r3.Vec, d1, d2, h, phi1, phi2 float64) (*CylinderSegment, error) {
	if d1 < 0 || d2 <= d1 || h <= 0 || phi2 <= phi1 || phi2-phi1 > 360 {
		return nil, ErrDimension
	}
	if err := checkExcitation(mag); err != nil {
		return nil, err
	}
	return &CylinderSegment{object: newObject(), mag: mag, dim: [5]float64{d1, d2, h, phi1, phi2}}, nil
}

func (c *CylinderSegment) Kind() bfield.Kind     { return bfield.KindCylinderSegment }
func (c *CylinderSegment) Magnetization() r3.Vec { return c.mag }
func (c *CylinderSegment) Dimension() [5]float64 { return c.dim }

// Sphere is a homogeneously magnetized sphere with diameter in mm.
type Sphere struct {
	object
	mag r3.Vec
	dia float64
}

func NewSphere(mag r3.Vec, diameter float64) (*Sphere, error) {
	if diameter <= 0 {
		return nil, ErrDimension
	}
	if err := checkExcitation(mag); err != nil {
		return nil, err
	}
	return &Sphere{object: newObject(), mag: mag, dia: diameter}, nil
}

func (s *Sphere) Kind() bfield.Kind     { return bfield.KindSphere }
func (s *Sphere) Magnetization() r3.Vec { return s.mag }
func (s *Sphere) Diameter() float64     { return s.dia }

// Dipole is a point dipole with moment in mT·mm³.
type Dipole struct {
	object
	moment r3.Vec
}

func NewDipole(moment r3.Vec) (*Dipole, error) {
	if err := checkExcitation(moment); err != nil {
		return nil, err
	}
	return &Dipole{object: newObject(), moment: moment}, nil
}

func (d *Dipole) Kind() bfield.Kind { return bfield.KindDipole }
func (d *Dipole) Moment() r3.Vec    { return d.moment }

// Loop is a circular current loop in the local xy plane, current in A,
// diameter in mm.
type Loop struct {
	object
	current  float64
	diameter float64
}

func NewLoop(current, diameter float64) (*Loop, error) {
	if diameter <= 0 {
		return nil, ErrDimension
	}
	return &Loop{object: newObject(), current: current, diameter: diameter}, nil
}

func (l *Loop) Kind() bfield.Kind { return bfield.KindLoop }
func (l *Loop) Current() float64  { return l.current }
func (l *Loop) Diameter() float64 { return l.diameter }

// Polyline is a piecewise-linear current along the given vertices in the
// local frame, current in A flowing from the first to the last vertex.
type Polyline struct {
	object
	current  float64
	vertices []r3.Vec
}

func NewPolyline(current float64, vertices []r3.Vec) (*Polyline, error) {
	if len(vertices) < 2 {
		return nil, ErrVertices
	}
	return &Polyline{
		object:   newObject(),
		current:  current,
		vertices: append([]r3.Vec(nil), vertices...),
	}, nil
}

func (p *Polyline) Kind() bfield.Kind  { return bfield.KindPolyline }
func (p *Polyline) Current() float64   { return p.current }
func (p *Polyline) Vertices() []r3.Vec { return append([]r3.Vec(nil), p.vertices...) }
