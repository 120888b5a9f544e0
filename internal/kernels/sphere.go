package kernels

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Sphere computes the field of homogeneously magnetized spheres. Outside
// the body the sphere is an exact dipole; inside, B = 2/3 magnetization.
func Sphere(bh bool, mag []r3.Vec, dia []float64, pos []r3.Vec, ori []r3.Rotation, obs []r3.Vec) []r3.Vec {
	rel := localObs(pos, ori, obs)
	out := make([]r3.Vec, len(rel))
	for i, p := range rel {
		rad := dia[i] / 2
		r := r3.Norm(p)
		if r < rad {
			out[i] = magnetBH(bh, r3.Scale(2.0/3.0, mag[i]), mag[i], true)
			continue
		}
		rhat := r3.Scale(1/r, p)
		field := r3.Scale(rad*rad*rad/(3*r*r*r),
			r3.Sub(r3.Scale(3*r3.Dot(mag[i], rhat), rhat), mag[i]))
		out[i] = magnetBH(bh, field, mag[i], false)
	}
	return globalize(ori, out)
}
