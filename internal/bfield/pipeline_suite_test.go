package bfield_test

import (
	"math"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/fluxline/fluxline/internal/bfield"
	"github.com/fluxline/fluxline/internal/magnet"
	"github.com/fluxline/fluxline/internal/sensor"
)

func TestPipeline(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Field Pipeline Suite")
}

func mustCuboid(mag, dim r3.Vec) *magnet.Cuboid {
	c, err := magnet.NewCuboid(mag, dim)
	Expect(err).NotTo(HaveOccurred())
	return c
}

func vecAt(t *bfield.Tensor, ix ...int) r3.Vec {
	return r3.Vec{
		X: t.At(append(ix, 0)...),
		Y: t.At(append(ix, 1)...),
		Z: t.At(append(ix, 2)...),
	}
}

var _ = Describe("Evaluate", func() {
	var (
		cube *magnet.Cuboid
		obs  bfield.Observer
	)

	BeforeEach(func() {
		cube = mustCuboid(r3.Vec{Z: 1000}, r3.Vec{X: 1, Y: 1, Z: 1})
		obs = sensor.At(r3.Vec{Z: 2})
	})

	It("reproduces the unit cuboid reference value", func() {
		res, err := bfield.Evaluate(bfield.FieldB, []bfield.Entry{cube}, []bfield.Observer{obs}, bfield.DefaultOptions())
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Shape).To(Equal([]int{3}))
		Expect(res.Data[0]).To(BeNumerically("~", 0, 1e-12))
		Expect(res.Data[1]).To(BeNumerically("~", 0, 1e-12))
		Expect(res.Data[2]).To(BeNumerically("~", 19.638572073859756, 1e-9))
	})

	It("relates B and H outside the magnet", func() {
		b, err := bfield.Evaluate(bfield.FieldB, []bfield.Entry{cube}, []bfield.Observer{obs}, bfield.DefaultOptions())
		Expect(err).NotTo(HaveOccurred())
		h, err := bfield.Evaluate(bfield.FieldH, []bfield.Entry{cube}, []bfield.Observer{obs}, bfield.DefaultOptions())
		Expect(err).NotTo(HaveOccurred())
		s := 10.0 / (4 * math.Pi)
		for i := range b.Data {
			Expect(h.Data[i]).To(BeNumerically("~", b.Data[i]*s, 1e-12))
		}
	})

	Describe("source ordering", func() {
		It("keeps the output rows aligned with the input order", func() {
			a := mustCuboid(r3.Vec{X: 500}, r3.Vec{X: 1, Y: 1, Z: 1})
			b := mustCuboid(r3.Vec{Y: 700}, r3.Vec{X: 2, Y: 1, Z: 1})
			dip, err := magnet.NewDipole(r3.Vec{Z: 300})
			Expect(err).NotTo(HaveOccurred())

			// mixed kinds force non-trivial grouping and scatter-back
			fwd, err := bfield.Evaluate(bfield.FieldB, []bfield.Entry{a, dip, b}, []bfield.Observer{obs}, bfield.Options{})
			Expect(err).NotTo(HaveOccurred())
			rev, err := bfield.Evaluate(bfield.FieldB, []bfield.Entry{b, dip, a}, []bfield.Observer{obs}, bfield.Options{})
			Expect(err).NotTo(HaveOccurred())

			Expect(vecAt(fwd, 0, 0, 0)).To(Equal(vecAt(rev, 2, 0, 0)))
			Expect(vecAt(fwd, 1, 0, 0)).To(Equal(vecAt(rev, 1, 0, 0)))
			Expect(vecAt(fwd, 2, 0, 0)).To(Equal(vecAt(rev, 0, 0, 0)))
		})
	})

	Describe("grouping", func() {
		It("sums a collection exactly like its members", func() {
			a := mustCuboid(r3.Vec{X: 500}, r3.Vec{X: 1, Y: 1, Z: 1})
			b := mustCuboid(r3.Vec{Y: 700}, r3.Vec{X: 2, Y: 1, Z: 1})
			b.SetPosition(r3.Vec{X: 1.5})
			col := magnet.NewCollection(a, b)

			grouped, err := bfield.Evaluate(bfield.FieldB, []bfield.Entry{col}, []bfield.Observer{obs}, bfield.DefaultOptions())
			Expect(err).NotTo(HaveOccurred())
			summed, err := bfield.Evaluate(bfield.FieldB, []bfield.Entry{a, b}, []bfield.Observer{obs},
				bfield.Options{SumUp: true, Squeeze: true})
			Expect(err).NotTo(HaveOccurred())

			for i := range grouped.Data {
				Expect(grouped.Data[i]).To(BeNumerically("~", summed.Data[i], 1e-12))
			}
		})

		It("evaluates a shared member once per entry it appears in", func() {
			one, err := bfield.Evaluate(bfield.FieldB, []bfield.Entry{cube}, []bfield.Observer{obs}, bfield.DefaultOptions())
			Expect(err).NotTo(HaveOccurred())
			twice, err := bfield.Evaluate(bfield.FieldB, []bfield.Entry{cube, cube}, []bfield.Observer{obs},
				bfield.Options{SumUp: true, Squeeze: true})
			Expect(err).NotTo(HaveOccurred())
			for i := range one.Data {
				Expect(twice.Data[i]).To(BeNumerically("~", 2*one.Data[i], 1e-12))
			}
		})
	})

	Describe("path handling", func() {
		It("pads short paths with their final state", func() {
			moving := mustCuboid(r3.Vec{Z: 1000}, r3.Vec{X: 1, Y: 1, Z: 1})
			Expect(moving.SetPath(bfield.Path{
				Pos: []r3.Vec{{}, {X: 0.5}, {X: 1}, {X: 1}, {X: 1}},
				Ori: []r3.Rotation{
					bfield.IdentityRotation(), bfield.IdentityRotation(),
					bfield.IdentityRotation(), bfield.IdentityRotation(),
					bfield.IdentityRotation(),
				},
			})).To(Succeed())

			res, err := bfield.Evaluate(bfield.FieldB, []bfield.Entry{moving}, []bfield.Observer{obs}, bfield.Options{Squeeze: true})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Shape).To(Equal([]int{5, 3}))

			// the static observer is tiled along the path: steps 2..4 share
			// the magnet's final state, so their fields match exactly
			for c := 0; c < 3; c++ {
				Expect(res.At(3, c)).To(Equal(res.At(2, c)))
				Expect(res.At(4, c)).To(Equal(res.At(2, c)))
			}
			// and the first step is the centered reference value
			Expect(res.At(0, 2)).To(BeNumerically("~", 19.638572073859756, 1e-9))
		})

		It("leaves caller paths untouched", func() {
			moving := mustCuboid(r3.Vec{Z: 1000}, r3.Vec{X: 1, Y: 1, Z: 1})
			Expect(moving.SetPath(bfield.Path{
				Pos: []r3.Vec{{}, {X: 1}},
				Ori: []r3.Rotation{bfield.IdentityRotation(), bfield.IdentityRotation()},
			})).To(Succeed())

			_, err := bfield.Evaluate(bfield.FieldB, []bfield.Entry{moving}, []bfield.Observer{obs}, bfield.DefaultOptions())
			Expect(err).NotTo(HaveOccurred())
			Expect(moving.Path().Len()).To(Equal(2))
		})
	})

	Describe("observers", func() {
		It("arranges pixels in the canonical axes", func() {
			s := sensor.New()
			Expect(s.SetPixels([]int{2, 2}, []r3.Vec{
				{X: -0.1, Y: -0.1}, {X: -0.1, Y: 0.1},
				{X: 0.1, Y: -0.1}, {X: 0.1, Y: 0.1},
			})).To(Succeed())
			s.SetPosition(r3.Vec{Z: 2})

			res, err := bfield.Evaluate(bfield.FieldB, []bfield.Entry{cube}, []bfield.Observer{s}, bfield.Options{})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Shape).To(Equal([]int{1, 1, 1, 2, 2, 3}))

			// symmetric grid above an axially magnetized cube: equal Bz
			Expect(res.At(0, 0, 0, 0, 0, 2)).To(BeNumerically("~", res.At(0, 0, 0, 1, 1, 2), 1e-12))
			// and opposite in-plane components across the diagonal
			Expect(res.At(0, 0, 0, 0, 0, 0)).To(BeNumerically("~", -res.At(0, 0, 0, 1, 1, 0), 1e-12))
		})

		It("rejects mixed pixel shapes", func() {
			line := sensor.New()
			Expect(line.SetPixelLine([]r3.Vec{{X: -1}, {X: 1}})).To(Succeed())
			_, err := bfield.Evaluate(bfield.FieldB, []bfield.Entry{cube},
				[]bfield.Observer{line, sensor.At(r3.Vec{Z: 2})}, bfield.DefaultOptions())
			Expect(err).To(MatchError(bfield.ErrPixelShape))
		})
	})

	Describe("squeeze", func() {
		It("only changes the shape, never the data", func() {
			plain, err := bfield.Evaluate(bfield.FieldB, []bfield.Entry{cube}, []bfield.Observer{obs}, bfield.Options{})
			Expect(err).NotTo(HaveOccurred())
			squeezed, err := bfield.Evaluate(bfield.FieldB, []bfield.Entry{cube}, []bfield.Observer{obs}, bfield.Options{Squeeze: true})
			Expect(err).NotTo(HaveOccurred())
			Expect(squeezed.Data).To(Equal(plain.Data))
			Expect(squeezed.Shape).To(Equal([]int{3}))
			Expect(plain.Shape).To(Equal([]int{1, 1, 1, 3}))
		})
	})
})
