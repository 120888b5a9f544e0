package bfield

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

func isZero(v r3.Vec) bool { return v == (r3.Vec{}) }

// flattenEntries expands the top-level source entries into one ordered flat
// list of leaf sources. Nested groups are expanded depth-first so that the
// leaves of every top-level entry occupy one contiguous slice; widths
// records the leaf count of each entry for the later summation collapse.
// The Group case runs first so that a type satisfying both interfaces is
// consistently a group at every depth. Duplicates across distinct entries
// stay as distinct evaluation instances.
func flattenEntries(entries []Entry) (flat []Source, widths []int, err error) {
	widths = make([]int, 0, len(entries))
	for i, e := range entries {
		n0 := len(flat)
		switch v := e.(type) {
		case Group:
			flat, err = appendLeaves(flat, v)
			if err != nil {
				return nil, nil, fmt.Errorf("%w (entry %d)", err, i)
			}
		case Source:
			flat = append(flat, v)
		default:
			return nil, nil, fmt.Errorf("%w (entry %d: %T)", ErrBadEntry, i, e)
		}
		widths = append(widths, len(flat)-n0)
	}
	return flat, widths, nil
}

func appendLeaves(flat []Source, g Group) ([]Source, error) {
	for _, e := range g.Elements() {
		switch v := e.(type) {
		case Group:
			var err error
			flat, err = appendLeaves(flat, v)
			if err != nil {
				return nil, err
			}
		case Source:
			flat = append(flat, v)
		default:
			return nil, fmt.Errorf("%w (group member: %T)", ErrBadEntry, e)
		}
	}
	return flat, nil
}

// partition splits the flat source list into the fixed kind buckets,
// preserving within-bucket order. Each bucket holds original flat-list
// indices; the index→slot mapping is exactly invertible, which the
// assembler relies on for scatter-back.
func partition(flat []Source) ([numKinds][]int, error) {
	var buckets [numKinds][]int
	for i, s := range flat {
		k := s.Kind()
		if k < 0 || k >= numKinds {
			return buckets, fmt.Errorf("%w (index %d: kind %d)", ErrUnknownKind, i, k)
		}
		buckets[k] = append(buckets[k], i)
	}
	return buckets, nil
}

// checkSources verifies that every flat source carries initialized geometry
// and excitation before any computation starts.
func checkSources(flat []Source) error {
	for i, s := range flat {
		if err := checkSource(s); err != nil {
			return fmt.Errorf("%w (index %d, kind %s)", err, i, s.Kind())
		}
	}
	return nil
}

func checkSource(s Source) error {
	switch s.Kind() {
	case KindCuboid:
		c, ok := s.(CuboidSource)
		if !ok {
			return ErrKindMismatch
		}
		d := c.Dimension()
		if d.X <= 0 || d.Y <= 0 || d.Z <= 0 {
			return ErrNotInitialized
		}
		if isZero(c.Magnetization()) {
			return ErrNotInitialized
		}
	case KindCylinder:
		c, ok := s.(CylinderSource)
		if !ok {
			return ErrKindMismatch
		}
		d := c.Dimension()
		if d[0] <= 0 || d[1] <= 0 {
			return ErrNotInitialized
		}
		if isZero(c.Magnetization()) {
			return ErrNotInitialized
		}
	case KindCylinderSegment:
		c, ok := s.(CylinderSegmentSource)
		if !ok {
			return ErrKindMismatch
		}
		d := c.Dimension()
		if d[0] < 0 || d[1] <= d[0] || d[2] <= 0 || d[4] <= d[3] {
			return ErrNotInitialized
		}
		if isZero(c.Magnetization()) {
			return ErrNotInitialized
		}
	case KindSphere:
		c, ok := s.(SphereSource)
		if !ok {
			return ErrKindMismatch
		}
		if c.Diameter() <= 0 || isZero(c.Magnetization()) {
			return ErrNotInitialized
		}
	case KindDipole:
		c, ok := s.(DipoleSource)
		if !ok {
			return ErrKindMismatch
		}
		if isZero(c.Moment()) {
			return ErrNotInitialized
		}
	case KindLoop:
		c, ok := s.(LoopSource)
		if !ok {
			return ErrKindMismatch
		}
		if c.Diameter() <= 0 {
			return ErrNotInitialized
		}
	case KindPolyline:
		c, ok := s.(PolylineSource)
		if !ok {
			return ErrKindMismatch
		}
		if len(c.Vertices()) < 2 {
			return ErrNotInitialized
		}
	default:
		return ErrUnknownKind
	}
	return nil
}
