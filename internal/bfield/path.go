package bfield

import "gonum.org/v1/gonum/spatial/r3"

// Path is the ordered sequence of position/orientation states an object
// visits. A length-1 path is static. Pos and Ori always have equal length.
type Path struct {
	Pos []r3.Vec
	Ori []r3.Rotation
}

// StaticPath returns a length-1 path.
func StaticPath(pos r3.Vec, ori r3.Rotation) Path {
	return Path{Pos: []r3.Vec{pos}, Ori: []r3.Rotation{ori}}
}

// IdentityRotation is the unit orientation.
func IdentityRotation() r3.Rotation {
	return rotIdentity
}

func (p Path) Len() int { return len(p.Pos) }

// aligned returns a copy of p padded to length m by repeating the final
// state. Alignment always copies so that evaluation never aliases or
// mutates caller-owned path slices.
func (p Path) aligned(m int) Path {
	out := Path{
		Pos: make([]r3.Vec, m),
		Ori: make([]r3.Rotation, m),
	}
	n := copy(out.Pos, p.Pos)
	copy(out.Ori, p.Ori)
	for i := n; i < m; i++ {
		out.Pos[i] = p.Pos[n-1]
		out.Ori[i] = p.Ori[n-1]
	}
	return out
}

// alignPaths computes the common path length m (the maximum over all
// sources and observers) and returns aligned snapshots for each. An empty
// path on any object is rejected.
func alignPaths(sources []Source, observers []Observer) (srcPaths, obsPaths []Path, m int, err error) {
	m = 1
	for _, s := range sources {
		n := s.Path().Len()
		if n == 0 {
			return nil, nil, 0, ErrEmptyPath
		}
		if n > m {
			m = n
		}
	}
	for _, o := range observers {
		n := o.Path().Len()
		if n == 0 {
			return nil, nil, 0, ErrEmptyPath
		}
		if n > m {
			m = n
		}
	}

	srcPaths = make([]Path, len(sources))
	for i, s := range sources {
		srcPaths[i] = s.Path().aligned(m)
	}
	obsPaths = make([]Path, len(observers))
	for i, o := range observers {
		obsPaths[i] = o.Path().aligned(m)
	}
	return srcPaths, obsPaths, m, nil
}
