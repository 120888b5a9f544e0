package kernels

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Loop computes the field of circular current loops lying in their local
// xy plane, centered on the origin, with current in A and diameter in mm.
func Loop(bh bool, cur, dia []float64, pos []r3.Vec, ori []r3.Rotation, obs []r3.Vec) []r3.Vec {
	rel := localObs(pos, ori, obs)
	out := make([]r3.Vec, len(rel))
	for i, p := range rel {
		brho, bz := loopCylB(cur[i], dia[i]/2, math.Hypot(p.X, p.Y), p.Z)
		var field r3.Vec
		rho := math.Hypot(p.X, p.Y)
		if rho > 0 {
			field = r3.Vec{X: brho * p.X / rho, Y: brho * p.Y / rho, Z: bz}
		} else {
			field = r3.Vec{Z: bz}
		}
		out[i] = currentBH(bh, field)
	}
	return globalize(ori, out)
}

// loopCylB returns the cylindrical field components of a loop of radius a
// at (rho, z), using the complete elliptic integrals via cel.
func loopCylB(cur, a, rho, z float64) (brho, bz float64) {
	if rho < 1e-12 {
		d := a*a + z*z
		return 0, mu0 * cur * a * a / (2 * d * math.Sqrt(d))
	}
	dm := (a-rho)*(a-rho) + z*z
	dp := (a+rho)*(a+rho) + z*z
	if dm < 1e-24 {
		// observation point on the loop wire
		return 0, 0
	}
	k2 := 4 * a * rho / dp
	kc := math.Sqrt(1 - k2)
	K := cel(kc, 1, 1, 1)
	E := cel(kc, 1, 1, kc*kc)
	pre := mu0 * cur / (2 * math.Pi * math.Sqrt(dp))
	bz = pre * (K + (a*a-rho*rho-z*z)/dm*E)
	brho = pre * z / rho * (-K + (a*a+rho*rho+z*z)/dm*E)
	return brho, bz
}
