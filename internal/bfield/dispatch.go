package bfield

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/fluxline/fluxline/internal/kernels"
)

// A packer builds the dense row tensors for one bucket of same-kind sources
// and invokes the kind's kernel once for the whole bucket. Row layout is
// source-major: row (i·m + j)·nPix + c holds source i, path step j,
// observation column c. The kernel table is the single place a kind is
// bound to its kernel; adding a kind adds one row here.
type packer func(bh bool, grp []Source, pos []r3.Vec, ori []r3.Rotation, obs []r3.Vec, nPP int) ([]r3.Vec, error)

var kernelTable = [numKinds]packer{
	KindCuboid:          packCuboid,
	KindCylinder:        packCylinder,
	KindCylinderSegment: packCylinderSegment,
	KindSphere:          packSphere,
	KindDipole:          packDipole,
	KindLoop:            packLoop,
	KindPolyline:        packPolyline,
}

// dispatch evaluates one non-empty bucket. idx holds the original flat-list
// indices of the bucket members; the returned rows cover lg·nPP entries.
func dispatch(ft FieldType, kind Kind, flat []Source, srcPaths []Path, idx []int, nPix, nPP int, obsPoints []r3.Vec) ([]r3.Vec, error) {
	if kind < 0 || kind >= numKinds || kernelTable[kind] == nil {
		return nil, fmt.Errorf("%w (kind %d)", ErrUnknownKind, kind)
	}

	grp := make([]Source, len(idx))
	for i, fi := range idx {
		grp[i] = flat[fi]
	}

	pos, ori := tileSourceStates(srcPaths, idx, nPix, nPP)
	obs := tileObservations(obsPoints, len(idx))

	return kernelTable[kind](ft == FieldB, grp, pos, ori, obs, nPP)
}

// tileSourceStates repeats each source's per-step position and orientation
// once per observation column: row (i·m + j)·nPix + c gets step j of
// source i.
func tileSourceStates(srcPaths []Path, idx []int, nPix, nPP int) ([]r3.Vec, []r3.Rotation) {
	n := len(idx) * nPP
	pos := make([]r3.Vec, 0, n)
	ori := make([]r3.Rotation, 0, n)
	for _, fi := range idx {
		p := srcPaths[fi]
		for j := range p.Pos {
			for c := 0; c < nPix; c++ {
				pos = append(pos, p.Pos[j])
				ori = append(ori, p.Ori[j])
			}
		}
	}
	return pos, ori
}

// tileObservations repeats the shared observation array whole, once per
// bucket member.
func tileObservations(obsPoints []r3.Vec, lg int) []r3.Vec {
	out := make([]r3.Vec, 0, lg*len(obsPoints))
	for i := 0; i < lg; i++ {
		out = append(out, obsPoints...)
	}
	return out
}

func tileVec(vals []r3.Vec, nPP int) []r3.Vec {
	out := make([]r3.Vec, 0, len(vals)*nPP)
	for _, v := range vals {
		for r := 0; r < nPP; r++ {
			out = append(out, v)
		}
	}
	return out
}

func tileScalar(vals []float64, nPP int) []float64 {
	out := make([]float64, 0, len(vals)*nPP)
	for _, v := range vals {
		for r := 0; r < nPP; r++ {
			out = append(out, v)
		}
	}
	return out
}

func packCuboid(bh bool, grp []Source, pos []r3.Vec, ori []r3.Rotation, obs []r3.Vec, nPP int) ([]r3.Vec, error) {
	mag := make([]r3.Vec, len(grp))
	dim := make([]r3.Vec, len(grp))
	for i, s := range grp {
		c, ok := s.(CuboidSource)
		if !ok {
			return nil, ErrKindMismatch
		}
		mag[i] = c.Magnetization()
		dim[i] = c.Dimension()
	}
	return kernels.Cuboid(bh, tileVec(mag, nPP), tileVec(dim, nPP), pos, ori, obs), nil
}

func packCylinder(bh bool, grp []Source, pos []r3.Vec, ori []r3.Rotation, obs []r3.Vec, nPP int) ([]r3.Vec, error) {
	mag := make([]r3.Vec, len(grp))
	dim := make([][2]float64, 0, len(grp)*nPP)
	for i, s := range grp {
		c, ok := s.(CylinderSource)
		if !ok {
			return nil, ErrKindMismatch
		}
		mag[i] = c.Magnetization()
		d := c.Dimension()
		for r := 0; r < nPP; r++ {
			dim = append(dim, d)
		}
	}
	return kernels.Cylinder(bh, tileVec(mag, nPP), dim, pos, ori, obs), nil
}

func packCylinderSegment(bh bool, grp []Source, pos []r3.Vec, ori []r3.Rotation, obs []r3.Vec, nPP int) ([]r3.Vec, error) {
	mag := make([]r3.Vec, len(grp))
	dim := make([][6]float64, 0, len(grp)*nPP)
	for i, s := range grp {
		c, ok := s.(CylinderSegmentSource)
		if !ok {
			return nil, ErrKindMismatch
		}
		mag[i] = c.Magnetization()
		// user form (d1,d2,h,phi1°,phi2°) -> kernel form (r1,r2,phi1,phi2,z1,z2)
		d := c.Dimension()
		kd := [6]float64{d[0] / 2, d[1] / 2, d[3] * math.Pi / 180, d[4] * math.Pi / 180, -d[2] / 2, d[2] / 2}
		for r := 0; r < nPP; r++ {
			dim = append(dim, kd)
		}
	}
	return kernels.CylinderSegment(bh, tileVec(mag, nPP), dim, pos, ori, obs), nil
}

func packSphere(bh bool, grp []Source, pos []r3.Vec, ori []r3.Rotation, obs []r3.Vec, nPP int) ([]r3.Vec, error) {
	mag := make([]r3.Vec, len(grp))
	dia := make([]float64, len(grp))
	for i, s := range grp {
		c, ok := s.(SphereSource)
		if !ok {
			return nil, ErrKindMismatch
		}
		mag[i] = c.Magnetization()
		dia[i] = c.Diameter()
	}
	return kernels.Sphere(bh, tileVec(mag, nPP), tileScalar(dia, nPP), pos, ori, obs), nil
}

func packDipole(bh bool, grp []Source, pos []r3.Vec, ori []r3.Rotation, obs []r3.Vec, nPP int) ([]r3.Vec, error) {
	mom := make([]r3.Vec, len(grp))
	for i, s := range grp {
		c, ok := s.(DipoleSource)
		if !ok {
			return nil, ErrKindMismatch
		}
		mom[i] = c.Moment()
	}
	return kernels.Dipole(bh, tileVec(mom, nPP), pos, ori, obs), nil
}

func packLoop(bh bool, grp []Source, pos []r3.Vec, ori []r3.Rotation, obs []r3.Vec, nPP int) ([]r3.Vec, error) {
	cur := make([]float64, len(grp))
	dia := make([]float64, len(grp))
	for i, s := range grp {
		c, ok := s.(LoopSource)
		if !ok {
			return nil, ErrKindMismatch
		}
		cur[i] = c.Current()
		dia[i] = c.Diameter()
	}
	return kernels.Loop(bh, tileScalar(cur, nPP), tileScalar(dia, nPP), pos, ori, obs), nil
}

// packPolyline passes currents and vertex lists per source; the kernel
// expands them internally since vertex counts vary between sources.
func packPolyline(bh bool, grp []Source, pos []r3.Vec, ori []r3.Rotation, obs []r3.Vec, nPP int) ([]r3.Vec, error) {
	cur := make([]float64, len(grp))
	verts := make([][]r3.Vec, len(grp))
	for i, s := range grp {
		c, ok := s.(PolylineSource)
		if !ok {
			return nil, ErrKindMismatch
		}
		cur[i] = c.Current()
		verts[i] = c.Vertices()
	}
	return kernels.Polyline(bh, cur, verts, pos, ori, obs), nil
}
