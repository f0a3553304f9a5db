package field

import (
	"github.com/san-kum/hwf/internal/grid"
	"github.com/san-kum/hwf/internal/quantum"
)

// RadialCurve samples P_nl(r) = r²R_nl(r)² on [0, r_max].
type RadialCurve struct {
	R []float64 // metres
	P []float64 // m⁻¹
}

// Len returns the number of samples.
func (c RadialCurve) Len() int { return len(c.R) }

// Extent describes the frame in both units the consumer needs.
type Extent struct {
	Units     grid.Bounds // in a_μ
	HalfWidth float64     // metres
}

// Field is the engine output. Psi and Density are indexed like the grid:
// row i ↔ z, column j ↔ x, flat index i*Resolution + j.
type Field struct {
	State      quantum.State
	Resolution int
	Grid       *grid.Grid
	Extent     Extent
	AMu        float64

	Psi     []complex128
	Density []float64 // raw |ψ|², before any exposure mapping
	Radial  RadialCurve

	// Advisories carries non-fatal *quantum.NumericDegradation notes.
	Advisories []error
}

// At returns ψ at row i (z) and column j (x).
func (f *Field) At(i, j int) complex128 {
	return f.Psi[i*f.Resolution+j]
}

// DensityAt returns |ψ|² at row i (z) and column j (x).
func (f *Field) DensityAt(i, j int) float64 {
	return f.Density[i*f.Resolution+j]
}

// Row returns the density row for z = Axis[i]. The slice aliases the field.
func (f *Field) Row(i int) []float64 {
	return f.Density[i*f.Resolution : (i+1)*f.Resolution]
}

// MaxDensity returns the largest |ψ|² sample and its flat index.
func (f *Field) MaxDensity() (float64, int) {
	best, idx := 0.0, 0
	for k, v := range f.Density {
		if v > best {
			best, idx = v, k
		}
	}
	return best, idx
}
