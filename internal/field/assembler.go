package field

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/hwf/internal/grid"
	"github.com/san-kum/hwf/internal/orbital"
	"github.com/san-kum/hwf/internal/quantum"
)

const (
	// DefaultRadialSamples is the length of the 1D P(r) curve.
	DefaultRadialSamples = 1000

	minRowsPerChunk = 4
)

// Assembler evaluates fields. The zero value is not usable; use NewAssembler.
type Assembler struct {
	workers       int
	radialSamples int
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithWorkers bounds the number of goroutines; <= 0 selects GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(a *Assembler) { a.workers = n }
}

// WithRadialSamples sets the P(r) curve length (minimum 2).
func WithRadialSamples(n int) Option {
	return func(a *Assembler) { a.radialSamples = n }
}

// NewAssembler returns an assembler with defaults applied.
func NewAssembler(opts ...Option) *Assembler {
	a := &Assembler{radialSamples: DefaultRadialSamples}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble evaluates ψ, |ψ|² and P(r) for st on the slice described by spec.
// Errors are returned before any partial result escapes.
func (a *Assembler) Assemble(ctx context.Context, st quantum.State, spec grid.SliceSpec) (*Field, error) {
	if a.radialSamples < 2 {
		return nil, &quantum.ParameterError{Name: "radial_samples", Value: float64(a.radialSamples), Reason: "need at least 2 samples"}
	}

	g, err := grid.New(st, spec)
	if err != nil {
		return nil, err
	}
	rad, err := orbital.RadialFor(st)
	if err != nil {
		return nil, err
	}
	ang, err := orbital.AngularFor(st)
	if err != nil {
		return nil, err
	}

	res := g.Resolution
	f := &Field{
		State:      st,
		Resolution: res,
		Grid:       g,
		Extent:     Extent{Units: g.Bounds(), HalfWidth: g.HalfWidth()},
		AMu:        st.AMu(),
		Psi:        make([]complex128, g.Len()),
		Density:    make([]float64, g.Len()),
	}

	err = quantum.ParallelFor(ctx, res, minRowsPerChunk, a.workers, func(start, end int) error {
		for i := start; i < end; i++ {
			if err := evalRow(f, g, rad, ang, i); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	f.Radial, err = radialCurve(rad, g.HalfWidth(), a.radialSamples)
	if err != nil {
		return nil, err
	}

	if err := checkFinite(st, f); err != nil {
		return nil, err
	}
	if st.Degraded() {
		f.Advisories = append(f.Advisories, &quantum.NumericDegradation{
			N:      st.N(),
			L:      st.L(),
			Reason: fmt.Sprintf("n above %d: measured-precision regime", quantum.PrecisionRegimeN),
		})
	}
	return f, nil
}

func evalRow(f *Field, g *grid.Grid, rad *orbital.Radial, ang *orbital.Angular, i int) error {
	base := i * g.Resolution
	for j := 0; j < g.Resolution; j++ {
		k := base + j
		r, err := rad.At(g.R[k])
		if err != nil {
			return err
		}
		y, err := ang.AtCos(g.CosTheta[k], g.Phi[k])
		if err != nil {
			return err
		}
		psi := complex(r, 0) * y
		f.Psi[k] = psi
		f.Density[k] = real(psi)*real(psi) + imag(psi)*imag(psi)
	}
	return nil
}

func radialCurve(rad *orbital.Radial, rMax float64, samples int) (RadialCurve, error) {
	c := RadialCurve{
		R: make([]float64, samples),
		P: make([]float64, samples),
	}
	floats.Span(c.R, 0, rMax)
	for i, r := range c.R {
		p, err := rad.Probability(r)
		if err != nil {
			return RadialCurve{}, err
		}
		c.P[i] = p
	}
	return c, nil
}

func checkFinite(st quantum.State, f *Field) error {
	bad := 0
	for _, v := range f.Density {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			bad++
		}
	}
	for _, v := range f.Radial.P {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			bad++
		}
	}
	if bad > 0 {
		return &quantum.NumericDegradation{
			N:      st.N(),
			L:      st.L(),
			Reason: fmt.Sprintf("%d non-finite samples", bad),
		}
	}
	return nil
}
