package kernels

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Cuboid computes the field of homogeneously magnetized cuboids.
// dim holds the full edge lengths.
func Cuboid(bh bool, mag, dim, pos []r3.Vec, ori []r3.Rotation, obs []r3.Vec) []r3.Vec {
	rel := localObs(pos, ori, obs)
	out := make([]r3.Vec, len(rel))
	for i, p := range rel {
		a, b, c := dim[i].X/2, dim[i].Y/2, dim[i].Z/2
		field := cuboidB(mag[i], a, b, c, p)
		inside := math.Abs(p.X) < a && math.Abs(p.Y) < b && math.Abs(p.Z) < c
		out[i] = magnetBH(bh, field, mag[i], inside)
	}
	return globalize(ori, out)
}

// cuboidB superposes the corner-sum solution for each magnetization
// component; the x and y parts reuse the z-axis expression under cyclic
// coordinate permutation.
func cuboidB(mag r3.Vec, a, b, c float64, p r3.Vec) r3.Vec {
	var out r3.Vec
	if mag.Z != 0 {
		bx, by, bz := cuboidAxisB(mag.Z, a, b, c, p.X, p.Y, p.Z)
		out = r3.Add(out, r3.Vec{X: bx, Y: by, Z: bz})
	}
	if mag.X != 0 {
		bx, by, bz := cuboidAxisB(mag.X, b, c, a, p.Y, p.Z, p.X)
		out = r3.Add(out, r3.Vec{X: bz, Y: bx, Z: by})
	}
	if mag.Y != 0 {
		bx, by, bz := cuboidAxisB(mag.Y, c, a, b, p.Z, p.X, p.Y)
		out = r3.Add(out, r3.Vec{X: by, Y: bz, Z: bx})
	}
	return out
}

// cuboidAxisB is the corner sum for magnetization m along the local z axis
// of a cuboid with half-edges (a,b,c), evaluated at (x,y,z).
func cuboidAxisB(m, a, b, c, x, y, z float64) (bx, by, bz float64) {
	for k := 1; k <= 2; k++ {
		for l := 1; l <= 2; l++ {
			for n := 1; n <= 2; n++ {
				s := 1.0
				if (k+l+n)%2 == 1 {
					s = -1.0
				}
				xs := x + sign(k)*a
				ys := y + sign(l)*b
				zs := z + sign(n)*c
				r := math.Sqrt(xs*xs + ys*ys + zs*zs)
				bx += s * safeLog(ys+r)
				by += s * safeLog(xs+r)
				bz -= s * math.Atan2(xs*ys, zs*r)
			}
		}
	}
	f := m / (4 * math.Pi)
	return f * bx, f * by, f * bz
}

func sign(k int) float64 {
	if k == 1 {
		return -1
	}
	return 1
}

// safeLog clamps the argument away from zero; it only matters for
// observation points exactly on a cuboid edge, where the field diverges.
func safeLog(v float64) float64 {
	if v < 1e-300 {
		v = 1e-300
	}
	return math.Log(v)
}
