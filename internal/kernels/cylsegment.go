package kernels

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// CylinderSegment computes the field of homogeneously magnetized annular
// cylinder sections. dim holds (r1, r2, phi1, phi2, z1, z2) with angles in
// radians. The kernel evaluates the charged-surface model over all six
// faces with fixed-order Gauss-Legendre quadrature; the flat side faces
// vanish for a full ring.
func CylinderSegment(bh bool, mag []r3.Vec, dim [][6]float64, pos []r3.Vec, ori []r3.Rotation, obs []r3.Vec) []r3.Vec {
	rel := localObs(pos, ori, obs)
	out := make([]r3.Vec, len(rel))
	for i, p := range rel {
		d := dim[i]
		field := segmentChargeB(mag[i], d, p)
		inside := segmentContains(d, p)
		if inside {
			// the charge model yields B - M inside the body
			field = r3.Add(field, mag[i])
		}
		out[i] = magnetBH(bh, field, mag[i], inside)
	}
	return globalize(ori, out)
}

func segmentContains(d [6]float64, p r3.Vec) bool {
	r1, r2, phi1, phi2, z1, z2 := d[0], d[1], d[2], d[3], d[4], d[5]
	rho := math.Hypot(p.X, p.Y)
	if rho <= r1 || rho >= r2 || p.Z <= z1 || p.Z >= z2 {
		return false
	}
	if fullRing(phi1, phi2) {
		return true
	}
	dphi := math.Mod(math.Atan2(p.Y, p.X)-phi1, 2*math.Pi)
	if dphi < 0 {
		dphi += 2 * math.Pi
	}
	return dphi < phi2-phi1
}

func fullRing(phi1, phi2 float64) bool {
	return math.Abs((phi2-phi1)-2*math.Pi) < 1e-12
}

// segmentChargeB sums the six face integrals with sigma = M·n̂ per face.
func segmentChargeB(mag r3.Vec, d [6]float64, p r3.Vec) r3.Vec {
	r1, r2, phi1, phi2, z1, z2 := d[0], d[1], d[2], d[3], d[4], d[5]
	h := z2 - z1
	zc := (z1 + z2) / 2
	// faces work on a height-centered frame; shift the observer instead
	pc := r3.Vec{X: p.X, Y: p.Y, Z: p.Z - zc}

	var b r3.Vec

	// top and bottom annular sectors, sigma = ±Mz
	if mag.Z != 0 {
		for _, f := range []struct{ z, sgn float64 }{{h / 2, 1}, {-h / 2, -1}} {
			zf, sgn := f.z, f.sgn
			b = r3.Add(b, integrate2(func(r, phi float64) r3.Vec {
				src := r3.Vec{X: r * math.Cos(phi), Y: r * math.Sin(phi), Z: zf}
				return r3.Scale(r, coulomb(sgn*mag.Z, src, pc))
			}, r1, r2, phi1, phi2))
		}
	}

	// outer and inner curved faces, sigma = ±(Mx·cosφ + My·sinφ)
	if mag.X != 0 || mag.Y != 0 {
		b = r3.Add(b, curvedFaceB(mag.X, mag.Y, 1, r2, h, phi1, phi2, pc))
		if r1 > 0 {
			b = r3.Add(b, curvedFaceB(mag.X, mag.Y, -1, r1, h, phi1, phi2, pc))
		}
	}

	// flat side faces at phi1 and phi2; normals are the in-plane
	// tangentials ±(sinφ, -cosφ, 0)
	if !fullRing(phi1, phi2) {
		for _, f := range []struct {
			phi float64
			n   r3.Vec
		}{
			{phi1, r3.Vec{X: math.Sin(phi1), Y: -math.Cos(phi1)}},
			{phi2, r3.Vec{X: -math.Sin(phi2), Y: math.Cos(phi2)}},
		} {
			sigma := mag.X*f.n.X + mag.Y*f.n.Y
			if sigma == 0 {
				continue
			}
			phif := f.phi
			b = r3.Add(b, integrate2(func(r, z float64) r3.Vec {
				src := r3.Vec{X: r * math.Cos(phif), Y: r * math.Sin(phif), Z: z}
				return coulomb(sigma, src, pc)
			}, r1, r2, -h/2, h/2))
		}
	}
	return b
}
