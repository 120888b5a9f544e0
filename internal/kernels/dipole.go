package kernels

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Dipole computes the field of point dipoles with moment in mT·mm³.
// The field at the dipole position itself is returned as zero.
func Dipole(bh bool, mom, pos []r3.Vec, ori []r3.Rotation, obs []r3.Vec) []r3.Vec {
	rel := localObs(pos, ori, obs)
	out := make([]r3.Vec, len(rel))
	for i, p := range rel {
		r := r3.Norm(p)
		if r < 1e-12 {
			continue
		}
		rhat := r3.Scale(1/r, p)
		out[i] = currentBH(bh, r3.Scale(1/(4*math.Pi*r*r*r),
			r3.Sub(r3.Scale(3*r3.Dot(mom[i], rhat), rhat), mom[i])))
	}
	return globalize(ori, out)
}
