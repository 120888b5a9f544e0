package kernels

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Cylinder computes the field of homogeneously magnetized full cylinders.
// dim holds (diameter, height). The axial magnetization part uses the
// exact Derby-Olbert expressions; a transverse part, if present, adds the
// charged-surface quadrature over the curved face.
func Cylinder(bh bool, mag []r3.Vec, dim [][2]float64, pos []r3.Vec, ori []r3.Rotation, obs []r3.Vec) []r3.Vec {
	rel := localObs(pos, ori, obs)
	out := make([]r3.Vec, len(rel))
	for i, p := range rel {
		r0, h := dim[i][0]/2, dim[i][1]
		rho := math.Hypot(p.X, p.Y)
		inside := rho < r0 && math.Abs(p.Z) < h/2

		var field r3.Vec
		if mag[i].Z != 0 {
			brho, bz := cylinderAxialB(mag[i].Z, r0, h, rho, p.Z)
			if rho > 0 {
				field = r3.Vec{X: brho * p.X / rho, Y: brho * p.Y / rho, Z: bz}
			} else {
				field = r3.Vec{Z: bz}
			}
		}
		if mag[i].X != 0 || mag[i].Y != 0 {
			t := curvedFaceB(mag[i].X, mag[i].Y, 1, r0, h, 0, 2*math.Pi, p)
			if inside {
				// the charge model yields B - M inside the body
				t = r3.Add(t, r3.Vec{X: mag[i].X, Y: mag[i].Y})
			}
			field = r3.Add(field, t)
		}
		out[i] = magnetBH(bh, field, mag[i], inside)
	}
	return globalize(ori, out)
}

// cylinderAxialB returns the cylindrical components (Brho, Bz) of a
// cylinder with radius r0 and height h, magnetized m along z, evaluated at
// (rho, z). Valid inside and outside (Derby & Olbert 2010).
func cylinderAxialB(m, r0, h, rho, z float64) (brho, bz float64) {
	b := h / 2
	zp, zm := z+b, z-b
	rp := rho + r0
	rm := rho - r0
	sp := math.Sqrt(zp*zp + rp*rp)
	sm := math.Sqrt(zm*zm + rp*rp)
	kp := math.Sqrt((zp*zp + rm*rm) / (zp*zp + rp*rp))
	km := math.Sqrt((zm*zm + rm*rm) / (zm*zm + rp*rp))
	g := (r0 - rho) / (r0 + rho)

	b0 := m / math.Pi
	brho = b0 * (r0/sp*cel(kp, 1, 1, -1) - r0/sm*cel(km, 1, 1, -1))
	bz = b0 * r0 / (r0 + rho) * (zp/sp*cel(kp, g*g, 1, g) - zm/sm*cel(km, g*g, 1, g))
	return brho, bz
}

// curvedFaceB integrates the surface charge sigma = Mx·cosφ + My·sinφ over
// the cylindrical face r=r0, φ∈[phi1,phi2], |z|<h/2 and returns its field
// at p. The sgn factor selects outer (+1) or inner (-1) face normals.
func curvedFaceB(mx, my, sgn, r0, h, phi1, phi2 float64, p r3.Vec) r3.Vec {
	return integrate2(func(phi, z float64) r3.Vec {
		c, s := math.Cos(phi), math.Sin(phi)
		sigma := sgn * (mx*c + my*s)
		src := r3.Vec{X: r0 * c, Y: r0 * s, Z: z}
		return r3.Scale(r0, coulomb(sigma, src, p))
	}, phi1, phi2, -h/2, h/2)
}
