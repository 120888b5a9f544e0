package kernels

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

func identity() []r3.Rotation {
	return []r3.Rotation{r3.Rotation(quat.Number{Real: 1})}
}

func origin() []r3.Vec {
	return []r3.Vec{{}}
}

func TestCuboidOnAxis(t *testing.T) {
	b := Cuboid(true,
		[]r3.Vec{{Z: 1000}},
		[]r3.Vec{{X: 1, Y: 1, Z: 1}},
		origin(), identity(),
		[]r3.Vec{{Z: 2}},
	)
	require.Len(t, b, 1)
	assert.InDelta(t, 0.0, b[0].X, 1e-12)
	assert.InDelta(t, 0.0, b[0].Y, 1e-12)
	assert.InDelta(t, 19.638572073859756, b[0].Z, 1e-9)
}

func TestCuboidGeneral(t *testing.T) {
	b := Cuboid(true,
		[]r3.Vec{{X: 111, Y: 222, Z: 333}},
		[]r3.Vec{{X: 1, Y: 2, Z: 3}},
		origin(), identity(),
		[]r3.Vec{{X: 2, Y: 3, Z: 4}},
	)
	assert.InDelta(t, 1.2038404833759895, b[0].X, 1e-9)
	assert.InDelta(t, 1.5335372093044835, b[0].Y, 1e-9)
	assert.InDelta(t, 1.7718870939012241, b[0].Z, 1e-9)
}

func TestCuboidFarFieldIsDipole(t *testing.T) {
	mag := r3.Vec{X: 111, Y: 222, Z: 333}
	dim := r3.Vec{X: 1, Y: 2, Z: 3}
	obs := r3.Vec{X: 12, Y: -13, Z: 14}
	vol := dim.X * dim.Y * dim.Z

	b := Cuboid(true, []r3.Vec{mag}, []r3.Vec{dim}, origin(), identity(), []r3.Vec{obs})
	d := Dipole(true, []r3.Vec{r3.Scale(vol, mag)}, origin(), identity(), []r3.Vec{obs})

	assert.InDelta(t, d[0].X, b[0].X, 1e-4)
	assert.InDelta(t, d[0].Y, b[0].Y, 1e-4)
	assert.InDelta(t, d[0].Z, b[0].Z, 1e-4)
}

func TestCuboidInsideH(t *testing.T) {
	mag := r3.Vec{X: 100, Y: 200, Z: 300}
	obs := r3.Vec{X: 0.1, Y: 0.2, Z: 0.3}
	b := Cuboid(true, []r3.Vec{mag}, []r3.Vec{{X: 2, Y: 2, Z: 2}}, origin(), identity(), []r3.Vec{obs})
	h := Cuboid(false, []r3.Vec{mag}, []r3.Vec{{X: 2, Y: 2, Z: 2}}, origin(), identity(), []r3.Vec{obs})

	assert.InDelta(t, 71.13091200708513, b[0].X, 1e-9)
	assert.InDelta(t, 138.75244694795052, b[0].Y, 1e-9)
	assert.InDelta(t, 198.90604453350966, b[0].Z, 1e-9)

	s := 10.0 / (4 * math.Pi)
	assert.InDelta(t, (b[0].X-mag.X)*s, h[0].X, 1e-9)
	assert.InDelta(t, (b[0].Y-mag.Y)*s, h[0].Y, 1e-9)
	assert.InDelta(t, (b[0].Z-mag.Z)*s, h[0].Z, 1e-9)
}

func TestSphere(t *testing.T) {
	mag := r3.Vec{Z: 1000}

	t.Run("inside is uniform", func(t *testing.T) {
		b := Sphere(true, []r3.Vec{mag}, []float64{2}, origin(), identity(), []r3.Vec{{X: 0.2, Y: 0.1, Z: -0.3}})
		assert.InDelta(t, 0, b[0].X, 1e-12)
		assert.InDelta(t, 0, b[0].Y, 1e-12)
		assert.InDelta(t, 2000.0/3, b[0].Z, 1e-9)
	})

	t.Run("outside matches equivalent dipole", func(t *testing.T) {
		obs := r3.Vec{X: 1.5, Y: -0.5, Z: 2}
		vol := 4.0 / 3 * math.Pi // radius 1
		b := Sphere(true, []r3.Vec{mag}, []float64{2}, origin(), identity(), []r3.Vec{obs})
		d := Dipole(true, []r3.Vec{r3.Scale(vol, mag)}, origin(), identity(), []r3.Vec{obs})
		assert.InDelta(t, d[0].X, b[0].X, 1e-9)
		assert.InDelta(t, d[0].Y, b[0].Y, 1e-9)
		assert.InDelta(t, d[0].Z, b[0].Z, 1e-9)
	})

	t.Run("inside H opposes magnetization", func(t *testing.T) {
		h := Sphere(false, []r3.Vec{mag}, []float64{2}, origin(), identity(), []r3.Vec{{}})
		s := 10.0 / (4 * math.Pi)
		assert.InDelta(t, -1000.0/3*s, h[0].Z, 1e-9)
	})
}

func TestLoop(t *testing.T) {
	t.Run("on axis", func(t *testing.T) {
		b := Loop(true, []float64{100}, []float64{2}, origin(), identity(), []r3.Vec{{Z: 1}})
		want := mu0 * 100 / (2 * 2 * math.Sqrt2)
		assert.InDelta(t, want, b[0].Z, 1e-12)
		assert.InDelta(t, 0, b[0].X, 1e-12)
	})

	t.Run("off axis", func(t *testing.T) {
		b := Loop(true, []float64{100}, []float64{2}, origin(), identity(), []r3.Vec{{X: 0.3, Z: 1}})
		assert.InDelta(t, 4.918445640690599, b[0].X, 1e-9)
		assert.InDelta(t, 0, b[0].Y, 1e-12)
		assert.InDelta(t, 21.068237068772532, b[0].Z, 1e-9)
	})

	t.Run("H is scaled B", func(t *testing.T) {
		obs := []r3.Vec{{X: 0.3, Z: 1}}
		b := Loop(true, []float64{100}, []float64{2}, origin(), identity(), obs)
		h := Loop(false, []float64{100}, []float64{2}, origin(), identity(), obs)
		s := 10.0 / (4 * math.Pi)
		assert.InDelta(t, b[0].X*s, h[0].X, 1e-12)
		assert.InDelta(t, b[0].Z*s, h[0].Z, 1e-12)
	})
}

func TestPolylineLongWire(t *testing.T) {
	// segment endpoints nearly antipodal from the observer: the naive
	// denominator loses ~5 digits here, the exact value must still come
	// out at machine precision
	const L, d = 1e6, 2.0
	verts := []r3.Vec{{Z: -L}, {Z: L}}
	b := Polyline(true, []float64{10}, [][]r3.Vec{verts}, origin(), identity(), []r3.Vec{{X: d}})

	exact := mu0 * 10 / (2 * math.Pi * d) * L / math.Sqrt(L*L+d*d)
	assert.InDelta(t, exact, b[0].Y, 1e-12)
	// and the infinite-wire limit mu0*I/(2*pi*d) to within d^2/L^2
	assert.InDelta(t, mu0*10/(2*math.Pi*d), b[0].Y, 1e-9)
	assert.InDelta(t, 0, b[0].X, 1e-12)
	assert.InDelta(t, 0, b[0].Z, 1e-12)
}

func TestPolylineSquareApproximatesLoop(t *testing.T) {
	// a fine polygon around the loop circumference converges to the loop kernel
	const n = 720
	verts := make([]r3.Vec, n+1)
	for i := 0; i <= n; i++ {
		a := 2 * math.Pi * float64(i) / n
		verts[i] = r3.Vec{X: math.Cos(a), Y: math.Sin(a)}
	}
	obs := []r3.Vec{{X: 0.3, Z: 1}}
	pb := Polyline(true, []float64{100}, [][]r3.Vec{verts}, origin(), identity(), obs)
	lb := Loop(true, []float64{100}, []float64{2}, origin(), identity(), obs)
	assert.InDelta(t, lb[0].X, pb[0].X, 1e-3)
	assert.InDelta(t, lb[0].Z, pb[0].Z, 1e-3)
}

func TestCylinderAxial(t *testing.T) {
	mag := []r3.Vec{{Z: 1000}}
	dim := [][2]float64{{2, 2}}

	t.Run("outside", func(t *testing.T) {
		b := Cylinder(true, mag, dim, origin(), identity(), []r3.Vec{{X: 0.5, Z: 3}})
		assert.InDelta(t, 8.82489911467302, b[0].X, 1e-9)
		assert.InDelta(t, 0, b[0].Y, 1e-12)
		assert.InDelta(t, 34.94615385435533, b[0].Z, 1e-9)
	})

	t.Run("inside", func(t *testing.T) {
		b := Cylinder(true, mag, dim, origin(), identity(), []r3.Vec{{X: 0.3, Z: 0.2}})
		assert.InDelta(t, 15.832568009477288, b[0].X, 1e-9)
		assert.InDelta(t, 708.6225972627182, b[0].Z, 1e-9)
	})

	t.Run("on axis", func(t *testing.T) {
		b := Cylinder(true, mag, dim, origin(), identity(), []r3.Vec{{Z: 3}})
		zp, zm := 3.0+1, 3.0-1
		want := 1000.0 / 2 * (zp/math.Sqrt(zp*zp+1) - zm/math.Sqrt(zm*zm+1))
		assert.InDelta(t, want, b[0].Z, 1e-9)
	})
}

func TestCylinderTransverse(t *testing.T) {
	mag := []r3.Vec{{X: 500}}
	dim := [][2]float64{{2, 2}}
	b := Cylinder(true, mag, dim, origin(), identity(), []r3.Vec{{X: 1.5, Y: 0.8, Z: 0.5}})
	assert.InDelta(t, 49.69141189767124, b[0].X, 1e-9)
	assert.InDelta(t, 49.746456641391404, b[0].Y, 1e-9)
	assert.InDelta(t, 21.409534147764102, b[0].Z, 1e-9)
}

func TestCylinderSegmentFullRingMatchesCylinder(t *testing.T) {
	mag := []r3.Vec{{Z: 1000}}
	segDim := [][6]float64{{0, 1, 0, 2 * math.Pi, -1, 1}}
	cylDim := [][2]float64{{2, 2}}
	for _, obs := range []r3.Vec{{X: 0.5, Z: 3}, {X: 0.3, Z: 0.2}, {X: 2.5, Y: 1, Z: -0.4}} {
		sb := CylinderSegment(true, mag, segDim, origin(), identity(), []r3.Vec{obs})
		cb := Cylinder(true, mag, cylDim, origin(), identity(), []r3.Vec{obs})
		assert.InDelta(t, cb[0].X, sb[0].X, 1e-7)
		assert.InDelta(t, cb[0].Y, sb[0].Y, 1e-7)
		assert.InDelta(t, cb[0].Z, sb[0].Z, 1e-7)
	}
}

func TestCylinderSegmentFixture(t *testing.T) {
	mag := []r3.Vec{{X: 300, Y: 400, Z: 500}}
	dim := [][6]float64{{0.5, 1, 20 * math.Pi / 180, 160 * math.Pi / 180, -0.5, 0.5}}
	b := CylinderSegment(true, mag, dim, origin(), identity(), []r3.Vec{{X: 2, Y: -1.5, Z: 1.8}})
	assert.InDelta(t, 0.01097252654094616, b[0].X, 1e-9)
	assert.InDelta(t, -1.3849188346684385, b[0].Y, 1e-9)
	assert.InDelta(t, -0.39653699651243335, b[0].Z, 1e-9)
}

func TestFrameTransform(t *testing.T) {
	// rotating a magnet 90 degrees about z is the same as evaluating the
	// unrotated magnet at the inversely rotated point and rotating the
	// field forward
	rot := r3.NewRotation(math.Pi/2, r3.Vec{Z: 1})
	obs := r3.Vec{X: 1.2, Y: 0.4, Z: 1.8}
	mag := r3.Vec{X: 200, Z: 800}
	dim := r3.Vec{X: 1, Y: 2, Z: 1}

	rotated := Cuboid(true, []r3.Vec{mag}, []r3.Vec{dim}, origin(), []r3.Rotation{rot}, []r3.Vec{obs})

	inv := r3.Rotation(quat.Conj(quat.Number(rot)))
	base := Cuboid(true, []r3.Vec{mag}, []r3.Vec{dim}, origin(), identity(), []r3.Vec{inv.Rotate(obs)})
	want := rot.Rotate(base[0])

	assert.InDelta(t, want.X, rotated[0].X, 1e-9)
	assert.InDelta(t, want.Y, rotated[0].Y, 1e-9)
	assert.InDelta(t, want.Z, rotated[0].Z, 1e-9)
}

func TestPositionOffset(t *testing.T) {
	// moving the source is the same as moving the observer the other way
	off := r3.Vec{X: 1, Y: -2, Z: 0.5}
	obs := r3.Vec{X: 2, Y: 1, Z: 3}
	moved := Sphere(true, []r3.Vec{{Z: 1000}}, []float64{1}, []r3.Vec{off}, identity(), []r3.Vec{obs})
	base := Sphere(true, []r3.Vec{{Z: 1000}}, []float64{1}, origin(), identity(), []r3.Vec{r3.Sub(obs, off)})
	assert.Equal(t, base[0], moved[0])
}

func TestCelAgreesWithAGM(t *testing.T) {
	for _, k2 := range []float64{0.1, 0.3, 0.7, 0.95} {
		kc := math.Sqrt(1 - k2)
		a, b := 1.0, kc
		for math.Abs(a-b) > 1e-15 {
			a, b = (a+b)/2, math.Sqrt(a*b)
		}
		assert.InDelta(t, math.Pi/(2*a), cel(kc, 1, 1, 1), 1e-12, "k2=%v", k2)
	}
}
