package kernels

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Polyline computes the field of piecewise-linear currents. Currents and
// vertex lists are per source (vertex counts vary), while pos, ori and obs
// are packed rows; each source i owns the contiguous row block
// [i·nPP, (i+1)·nPP).
func Polyline(bh bool, cur []float64, verts [][]r3.Vec, pos []r3.Vec, ori []r3.Rotation, obs []r3.Vec) []r3.Vec {
	rel := localObs(pos, ori, obs)
	out := make([]r3.Vec, len(rel))
	nPP := len(rel) / len(cur)
	for i := range cur {
		vs := verts[i]
		for r := 0; r < nPP; r++ {
			row := i*nPP + r
			var b r3.Vec
			for s := 0; s+1 < len(vs); s++ {
				b = r3.Add(b, segmentB(cur[i], vs[s], vs[s+1], rel[row]))
			}
			out[row] = currentBH(bh, b)
		}
	}
	return globalize(ori, out)
}

// segmentB is the exact Biot-Savart field of a straight segment carrying
// current from p1 to p2. Points on the segment's carrier line get zero.
func segmentB(cur float64, p1, p2, obs r3.Vec) r3.Vec {
	a1 := r3.Sub(obs, p1)
	a2 := r3.Sub(obs, p2)
	n1 := r3.Norm(a1)
	n2 := r3.Norm(a2)
	cr := r3.Cross(a1, a2)
	cr2 := r3.Norm2(cr)
	if cr2 < 1e-24 {
		return r3.Vec{}
	}
	// n1·n2 + a1·a2 cancels catastrophically when the endpoints sit on
	// nearly opposite sides of the observer; |a1×a2|²/(n1·n2 − a1·a2) is
	// the same quantity without the subtraction in that regime
	dot := r3.Dot(a1, a2)
	var den float64
	if dot >= 0 {
		den = n1 * n2 * (n1*n2 + dot)
	} else {
		den = n1 * n2 * cr2 / (n1*n2 - dot)
	}
	if den < 1e-24 {
		return r3.Vec{}
	}
	return r3.Scale(mu0*cur/(4*math.Pi)*(n1+n2)/den, cr)
}
