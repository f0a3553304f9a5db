package field_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/hwf/internal/field"
	"github.com/san-kum/hwf/internal/grid"
	"github.com/san-kum/hwf/internal/quantum"
)

func mustState(n, l, m int, opts ...quantum.Option) quantum.State {
	st, err := quantum.NewState(n, l, m, opts...)
	Expect(err).NotTo(HaveOccurred())
	return st
}

func mustSpec(mode grid.PhiMode, phi0, k, extent float64, res int) grid.SliceSpec {
	spec, err := grid.NewSliceSpec(mode, phi0, k, extent, res)
	Expect(err).NotTo(HaveOccurred())
	return spec
}

func assemble(st quantum.State, spec grid.SliceSpec, opts ...field.Option) *field.Field {
	f, err := field.NewAssembler(opts...).Assemble(context.Background(), st, spec)
	Expect(err).NotTo(HaveOccurred())
	return f
}

// peakRadius returns the sampled r with the largest P(r).
func peakRadius(c field.RadialCurve) float64 {
	best, idx := -1.0, 0
	for i, p := range c.P {
		if p > best {
			best, idx = p, i
		}
	}
	return c.R[idx]
}

var _ = Describe("Assembler", func() {
	Describe("output shape", func() {
		It("indexes psi and density like the grid", func() {
			st := mustState(2, 1, 1)
			f := assemble(st, mustSpec(grid.PhiPlane, 0, 1.8, 0, 24), field.WithRadialSamples(50))

			Expect(f.Psi).To(HaveLen(24 * 24))
			Expect(f.Density).To(HaveLen(24 * 24))
			Expect(f.Radial.Len()).To(Equal(50))
			Expect(f.Radial.R[0]).To(BeZero())
			Expect(f.Radial.R[49]).To(BeNumerically("~", f.Extent.HalfWidth, 1e-12*f.Extent.HalfWidth))
			Expect(f.Row(3)).To(HaveLen(24))

			psi := f.At(5, 7)
			Expect(f.DensityAt(5, 7)).To(Equal(real(psi)*real(psi) + imag(psi)*imag(psi)))
		})

		It("reports the frame in units of a_mu", func() {
			st := mustState(3, 2, 1)
			f := assemble(st, mustSpec(grid.PhiPlane, 0, 2, 0, 8))

			Expect(f.Extent.Units.XMax).To(BeNumerically("~", 21, 1e-9))
			Expect(f.Extent.Units.ZMin).To(BeNumerically("~", -21, 1e-9))
			Expect(f.AMu).To(Equal(st.AMu()))
		})
	})

	Describe("determinism", func() {
		It("produces identical arrays on repeated runs", func() {
			st := mustState(4, 2, -1)
			spec := mustSpec(grid.PhiConstant, 0.6, 1.5, 0, 64)

			a := assemble(st, spec)
			b := assemble(st, spec)
			Expect(a.Psi).To(Equal(b.Psi))
			Expect(a.Density).To(Equal(b.Density))
			Expect(a.Radial.P).To(Equal(b.Radial.P))
		})

		It("does not depend on the worker count", func() {
			st := mustState(3, 1, 1)
			spec := mustSpec(grid.PhiPlane, 0, 1.5, 0, 61)

			serial := assemble(st, spec, field.WithWorkers(1))
			parallel := assemble(st, spec, field.WithWorkers(7))
			Expect(parallel.Psi).To(Equal(serial.Psi))
		})
	})

	Describe("non-negativity", func() {
		DescribeTable("density is >= 0 everywhere",
			func(n, l, m int, mode grid.PhiMode) {
				f := assemble(mustState(n, l, m), mustSpec(mode, 1.1, 1.5, 0, 40))
				for _, v := range f.Density {
					Expect(v).To(BeNumerically(">=", 0))
				}
				for _, p := range f.Radial.P {
					Expect(p).To(BeNumerically(">=", 0))
				}
			},
			Entry("1s", 1, 0, 0, grid.PhiPlane),
			Entry("2p-1", 2, 1, -1, grid.PhiPlane),
			Entry("3d2", 3, 2, 2, grid.PhiConstant),
			Entry("4f-3", 4, 3, -3, grid.PhiConstant),
			Entry("5g4", 5, 4, 4, grid.PhiPlane),
		)
	})

	Describe("ground state (1,0,0)", func() {
		It("has a positive radial curve peaking near a_mu", func() {
			st := mustState(1, 0, 0)
			f := assemble(st, mustSpec(grid.PhiPlane, 0, 0, 8, 16), field.WithRadialSamples(4001))

			Expect(f.Radial.P[0]).To(BeZero())
			for _, p := range f.Radial.P[1:] {
				Expect(p).To(BeNumerically(">", 0))
			}
			Expect(peakRadius(f.Radial) / st.AMu()).To(BeNumerically("~", 1, 0.01))
		})

		It("is brightest at the sample closest to the nucleus", func() {
			f := assemble(mustState(1, 0, 0), mustSpec(grid.PhiPlane, 0, 0, 5, 20))
			_, idx := f.MaxDensity()
			i, j := idx/f.Resolution, idx%f.Resolution
			Expect(i).To(BeElementOf(9, 10))
			Expect(j).To(BeElementOf(9, 10))
		})
	})

	Describe("d orbital (3,2,1)", func() {
		It("vanishes on the x and z axes", func() {
			st := mustState(3, 2, 1)
			res := 41
			f := assemble(st, mustSpec(grid.PhiPlane, 0, 1.8, 0, res))
			peak, _ := f.MaxDensity()
			Expect(peak).To(BeNumerically(">", 0))

			mid := res / 2
			for k := 0; k < res; k++ {
				Expect(f.DensityAt(mid, k)).To(BeNumerically("<", 1e-20*peak), "z=0 row")
				Expect(f.DensityAt(k, mid)).To(BeNumerically("<", 1e-20*peak), "x=0 column")
			}
			// Lobes sit on the diagonals.
			Expect(f.DensityAt(mid+8, mid+8)).To(BeNumerically(">", 1e-3*peak))
		})

		It("has a nodeless radial distribution", func() {
			f := assemble(mustState(3, 2, 1), mustSpec(grid.PhiPlane, 0, 3, 0, 8), field.WithRadialSamples(2000))
			zeros := 0
			for _, p := range f.Radial.P[1:] {
				if p == 0 {
					zeros++
				}
			}
			Expect(zeros).To(BeZero())
		})

		It("is mirror symmetric across x = 0 in plane mode", func() {
			res := 30
			f := assemble(mustState(3, 2, 1), mustSpec(grid.PhiPlane, 0, 1.8, 0, res))
			peak, _ := f.MaxDensity()
			for i := 0; i < res; i++ {
				for j := 0; j < res/2; j++ {
					Expect(f.DensityAt(i, j)).To(BeNumerically("~", f.DensityAt(i, res-1-j), 1e-9*peak))
				}
			}
		})
	})

	Describe("hydrogenic ion (2,1,0) with Z=2", func() {
		It("contracts every radial length by a factor of two", func() {
			h := mustState(2, 1, 0)
			ion := mustState(2, 1, 0, quantum.WithCharge(2))
			spec := mustSpec(grid.PhiPlane, 0, 1.8, 0, 32)

			fh := assemble(h, spec, field.WithRadialSamples(2001))
			fi := assemble(ion, spec, field.WithRadialSamples(2001))

			Expect(fh.Extent.HalfWidth / fi.Extent.HalfWidth).To(BeNumerically("~", 2, 1e-12))
			Expect(peakRadius(fh.Radial) / peakRadius(fi.Radial)).To(BeNumerically("~", 2, 1e-9))
			// P_Z(r) = Z·P_1(Zr) on matching samples.
			for i := range fh.Radial.P {
				Expect(fi.Radial.P[i]).To(BeNumerically("~", 2*fh.Radial.P[i], 1e-9*(1+2*fh.Radial.P[i])))
			}
		})
	})

	Describe("errors", func() {
		It("rejects an invalid slice spec", func() {
			_, err := field.NewAssembler().Assemble(context.Background(), mustState(1, 0, 0), grid.SliceSpec{Resolution: 1})
			Expect(err).To(MatchError(quantum.ErrInvalidParameter))
		})

		It("rejects a degenerate radial curve", func() {
			_, err := field.NewAssembler(field.WithRadialSamples(1)).
				Assemble(context.Background(), mustState(1, 0, 0), mustSpec(grid.PhiPlane, 0, 0, 0, 4))
			Expect(err).To(MatchError(quantum.ErrInvalidParameter))
		})

		It("stops when the context is canceled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, err := field.NewAssembler().Assemble(ctx, mustState(2, 0, 0), mustSpec(grid.PhiPlane, 0, 0, 0, 64))
			Expect(err).To(MatchError(context.Canceled))
		})
	})

	Describe("precision regime", func() {
		It("flags states beyond the guaranteed regime without failing", func() {
			st := mustState(quantum.PrecisionRegimeN+1, 0, 0)
			f := assemble(st, mustSpec(grid.PhiPlane, 0, 0, 0, 6), field.WithRadialSamples(10))

			Expect(f.Advisories).To(HaveLen(1))
			Expect(f.Advisories[0]).To(MatchError(quantum.ErrNumericDegradation))
			for _, v := range f.Density {
				Expect(math.IsNaN(v)).To(BeFalse())
			}
		})

		It("assembles a near-maximal l state with an advisory only", func() {
			st := mustState(151, 150, 0)
			f := assemble(st, mustSpec(grid.PhiPlane, 0, 1, 0, 40))

			Expect(f.Advisories).To(HaveLen(1))
			Expect(f.Advisories[0]).To(MatchError(quantum.ErrNumericDegradation))
			for i, v := range f.Density {
				Expect(math.IsNaN(v) || math.IsInf(v, 0)).To(BeFalse(), "density[%d] = %v", i, v)
				Expect(v).To(BeNumerically(">=", 0))
			}
			for _, p := range f.Radial.P {
				Expect(math.IsNaN(p) || math.IsInf(p, 0)).To(BeFalse())
			}
			peak, _ := f.MaxDensity()
			Expect(peak).To(BeNumerically(">", 0))

			// P(r) ∝ r^(2n) exp(−2r/(n a_μ)) peaks at n² a_μ.
			want := 151.0 * 151.0 * f.AMu
			Expect(peakRadius(f.Radial)).To(BeNumerically("~", want, 0.01*want))
		})

		It("does not flag ordinary states", func() {
			f := assemble(mustState(3, 1, 0), mustSpec(grid.PhiPlane, 0, 0, 0, 6))
			Expect(f.Advisories).To(BeEmpty())
		})
	})
})
