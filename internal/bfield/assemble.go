package bfield

import "gonum.org/v1/gonum/spatial/r3"

// scatter writes one bucket's kernel output into the rows of the dense
// result belonging to the recorded original flat-list indices. field holds
// L·m·nPix vectors addressed as (i·m + j)·nPix + c; rows holds lg·m·nPix
// vectors in bucket order.
func scatter(field []r3.Vec, rows []r3.Vec, idx []int, rowLen int) {
	for slot, fi := range idx {
		src := rows[slot*rowLen : (slot+1)*rowLen]
		copy(field[fi*rowLen:(fi+1)*rowLen], src)
	}
}

// collapseGroups reduces the leading axis from L flat sources to L0
// top-level entries by summing each entry's contiguous slice. Superposition
// happens here, before any observer rotation, so group sums and individual
// evaluations stay consistent under linearity. Returns field unchanged when
// every entry is a bare source.
func collapseGroups(field []r3.Vec, widths []int, rowLen int) []r3.Vec {
	l := 0
	for _, w := range widths {
		l += w
	}
	if l == len(widths) {
		return field
	}
	out := make([]r3.Vec, len(widths)*rowLen)
	start := 0
	for e, w := range widths {
		dst := out[e*rowLen : (e+1)*rowLen]
		for i := 0; i < w; i++ {
			src := field[(start+i)*rowLen : (start+i+1)*rowLen]
			for r, v := range src {
				dst[r] = r3.Add(dst[r], v)
			}
		}
		start += w
	}
	return out
}

// backRotate undoes each observer's frame orientation on its pixel block.
// Three strategies, cheapest first: observers with unit rotation are
// skipped entirely; observers with a static rotation get one batched
// inverse rotation over their whole (sources × path × pixels) sub-block;
// the general case applies the inverse of each path step separately. The
// general case dominates the cost for sensors with time-varying
// orientation.
func backRotate(field []r3.Vec, obsPaths []Path, flags []obsRotation, l0, m, kPixel int) {
	nPix := len(obsPaths) * kPixel
	for o, fl := range flags {
		if fl.unit {
			continue
		}
		if fl.static {
			inv := rotInv(obsPaths[o].Ori[0])
			for i := 0; i < l0; i++ {
				for j := 0; j < m; j++ {
					base := (i*m+j)*nPix + o*kPixel
					for p := 0; p < kPixel; p++ {
						field[base+p] = inv.Rotate(field[base+p])
					}
				}
			}
			continue
		}
		for j := 0; j < m; j++ {
			inv := rotInv(obsPaths[o].Ori[j])
			for i := 0; i < l0; i++ {
				base := (i*m+j)*nPix + o*kPixel
				for p := 0; p < kPixel; p++ {
					field[base+p] = inv.Rotate(field[base+p])
				}
			}
		}
	}
}

// reshape lays the collapsed rows out as the canonical output tensor
// (L0, m, K, pixel..., 3). The flat vector ordering already matches the
// canonical row-major layout, so this is a straight component copy.
func reshape(field []r3.Vec, l0, m, k int, pixShape []int) *Tensor {
	shape := make([]int, 0, len(pixShape)+4)
	shape = append(shape, l0, m, k)
	shape = append(shape, pixShape...)
	shape = append(shape, 3)

	data := make([]float64, len(field)*3)
	for i, v := range field {
		data[i*3] = v.X
		data[i*3+1] = v.Y
		data[i*3+2] = v.Z
	}
	return &Tensor{Shape: shape, Data: data}
}
