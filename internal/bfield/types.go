package bfield

import (
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Kind identifies the geometry of a source. The set is closed: dispatch
// uses a fixed table indexed by Kind, and adding a kind means adding one
// table row plus its kernel.
type Kind int

const (
	KindCuboid Kind = iota
	KindCylinder
	KindCylinderSegment
	KindSphere
	KindDipole
	KindLoop
	KindPolyline

	numKinds
)

func (k Kind) String() string {
	switch k {
	case KindCuboid:
		return "cuboid"
	case KindCylinder:
		return "cylinder"
	case KindCylinderSegment:
		return "cylinder_segment"
	case KindSphere:
		return "sphere"
	case KindDipole:
		return "dipole"
	case KindLoop:
		return "loop"
	case KindPolyline:
		return "polyline"
	}
	return "unknown"
}

// Kinds lists all source kinds in dispatch order.
func Kinds() []Kind {
	ks := make([]Kind, numKinds)
	for i := range ks {
		ks[i] = Kind(i)
	}
	return ks
}

// FieldType selects the returned field quantity.
type FieldType int

const (
	FieldB FieldType = iota // B in mT
	FieldH                  // H in kA/m
)

func (f FieldType) String() string {
	if f == FieldH {
		return "H"
	}
	return "B"
}

// Source is one field-generating element. Concrete sources additionally
// satisfy the accessor interface matching their Kind.
type Source interface {
	Kind() Kind
	Path() Path
}

// Group is an ordered collection summed as one unit. Members are Sources
// or nested Groups; evaluation flattens them up front. A type satisfying
// both Source and Group is treated as a Group everywhere.
type Group interface {
	Elements() []Entry
}

// Entry is one item of a source list: a Source or a Group.
type Entry = any

// Observer samples the field on a local grid of pixel offsets carried
// along its own path.
type Observer interface {
	Path() Path
	Pixels() PixelGrid
}

// Per-kind accessor interfaces. Geometry inputs mirror the packed kernel
// fields: cuboid (3 edge lengths), cylinder (diameter, height), cylinder
// segment (inner diameter, outer diameter, height, start angle, end angle
// in degrees).

type CuboidSource interface {
	Source
	Magnetization() r3.Vec
	Dimension() r3.Vec
}

type CylinderSource interface {
	Source
	Magnetization() r3.Vec
	Dimension() [2]float64
}

type CylinderSegmentSource interface {
	Source
	Magnetization() r3.Vec
	Dimension() [5]float64
}

type SphereSource interface {
	Source
	Magnetization() r3.Vec
	Diameter() float64
}

type DipoleSource interface {
	Source
	Moment() r3.Vec
}

type LoopSource interface {
	Source
	Current() float64
	Diameter() float64
}

type PolylineSource interface {
	Source
	Current() float64
	Vertices() []r3.Vec
}

// PixelGrid is an observer's local grid of sample offsets. Shape holds the
// leading grid axes (the trailing vector axis of length 3 is implicit); a
// nil Shape means a single sample point. Points is the row-major
// flattening, len(Points) = product(Shape).
type PixelGrid struct {
	Shape  []int
	Points []r3.Vec
}

// SinglePixel is the grid of one sample at the observer origin.
func SinglePixel() PixelGrid {
	return PixelGrid{Points: []r3.Vec{{}}}
}

// NumPixels returns the flattened sample count.
func (g PixelGrid) NumPixels() int {
	n := 1
	for _, s := range g.Shape {
		n *= s
	}
	return n
}

// ShapeEqual reports whether two grids have identical leading axes.
func (g PixelGrid) ShapeEqual(o PixelGrid) bool {
	if len(g.Shape) != len(o.Shape) {
		return false
	}
	for i, s := range g.Shape {
		if s != o.Shape[i] {
			return false
		}
	}
	return true
}

// Options control the output tensor layout.
type Options struct {
	// SumUp collapses the leading per-source axis by summation.
	SumUp bool
	// Squeeze drops every axis of length 1 from the final tensor.
	Squeeze bool
}

// DefaultOptions returns the conventional output layout: squeezed, one
// sub-tensor per top-level source entry.
func DefaultOptions() Options {
	return Options{Squeeze: true}
}

var rotIdentity = r3.Rotation(quat.Number{Real: 1})

func rotInv(r r3.Rotation) r3.Rotation {
	return r3.Rotation(quat.Conj(quat.Number(r)))
}

func rotEqual(a, b r3.Rotation) bool {
	return quat.Number(a) == quat.Number(b)
}
