package kernels

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// mu0 in mT·mm/A.
const mu0 = 4 * math.Pi * 1e-1

// hFromB converts mT to kA/m.
const hFromB = 10.0 / (4 * math.Pi)

// localObs transforms the observation points into each row's source frame:
// rotate (obs - pos) by the inverse source orientation.
func localObs(pos []r3.Vec, ori []r3.Rotation, obs []r3.Vec) []r3.Vec {
	rel := make([]r3.Vec, len(obs))
	for i := range obs {
		inv := r3.Rotation(quat.Conj(quat.Number(ori[i])))
		rel[i] = inv.Rotate(r3.Sub(obs[i], pos[i]))
	}
	return rel
}

// globalize rotates the computed field rows back into the global frame,
// in place.
func globalize(ori []r3.Rotation, b []r3.Vec) []r3.Vec {
	for i := range b {
		b[i] = ori[i].Rotate(b[i])
	}
	return b
}

// magnetBH converts a magnet-body B value to the requested quantity.
// Inside the body H = (B - magnetization)·10/(4π), outside H = B·10/(4π).
func magnetBH(bh bool, b, mag r3.Vec, inside bool) r3.Vec {
	if bh {
		return b
	}
	if inside {
		b = r3.Sub(b, mag)
	}
	return r3.Scale(hFromB, b)
}

// currentBH converts a free-space B value to the requested quantity.
func currentBH(bh bool, b r3.Vec) r3.Vec {
	if bh {
		return b
	}
	return r3.Scale(hFromB, b)
}
