package bfield

import "gonum.org/v1/gonum/spatial/r3"

// commonPixelShape verifies that all observers share one pixel grid shape
// and returns that shape together with the per-observer pixel count.
// Mismatched shapes would leave incomplete axes in the output tensor, so
// they are rejected before any field math runs.
func commonPixelShape(observers []Observer) (shape []int, kPixel int, err error) {
	first := observers[0].Pixels()
	for _, o := range observers[1:] {
		if !first.ShapeEqual(o.Pixels()) {
			return nil, 0, ErrPixelShape
		}
	}
	return first.Shape, first.NumPixels(), nil
}

// assembleObservations flattens all observer pixel grids into one dense
// array of global observation points of length m·nPix, where nPix is the
// combined per-step pixel count of all observers. Ordering is step-major:
// index j·nPix + o·kPixel + p addresses path step j, observer o, pixel p.
func assembleObservations(observers []Observer, obsPaths []Path, m, kPixel int) []r3.Vec {
	nPix := len(observers) * kPixel
	out := make([]r3.Vec, m*nPix)
	for o, obs := range observers {
		pix := obs.Pixels().Points
		path := obsPaths[o]
		for j := 0; j < m; j++ {
			pos := path.Pos[j]
			ori := path.Ori[j]
			base := j*nPix + o*kPixel
			for p, off := range pix {
				out[base+p] = r3.Add(ori.Rotate(off), pos)
			}
		}
	}
	return out
}

// obsRotation caches per-observer rotation properties so the assembler can
// pick the cheapest correct back-rotation strategy.
type obsRotation struct {
	unit   bool // identity orientation at every path step
	static bool // one distinct orientation along the whole path
}

func rotationFlags(obsPaths []Path) []obsRotation {
	flags := make([]obsRotation, len(obsPaths))
	for i, p := range obsPaths {
		unit, static := true, true
		for _, q := range p.Ori {
			if !rotEqual(q, rotIdentity) {
				unit = false
			}
			if !rotEqual(q, p.Ori[0]) {
				static = false
			}
		}
		flags[i] = obsRotation{unit: unit, static: static}
	}
	return flags
}
