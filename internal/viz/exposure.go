package viz

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/hwf/internal/quantum"
)

const (
	// ClipQuantile sets vmax so isolated spikes near the nucleus do not wash
	// out the rest of the slice.
	ClipQuantile = 0.999
	minGamma     = 0.1
)

// Norm maps raw |ψ|² onto [0, 1].
type Norm struct {
	VMax  float64
	Gamma float64 // 1 is linear
}

// NewNorm derives vmax from the 99.9th percentile of the finite samples and
// γ = max(0.1, 1/(1+exposure)). Exposure 0 gives a linear map.
func NewNorm(density []float64, exposure float64) (Norm, error) {
	if !(exposure >= 0) || math.IsInf(exposure, 1) {
		return Norm{}, fmt.Errorf("%w: exposure=%g: must be finite and >= 0", quantum.ErrInvalidParameter, exposure)
	}

	finite := make([]float64, 0, len(density))
	for _, v := range density {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}

	vmax := 1.0
	if len(finite) > 0 {
		sort.Float64s(finite)
		vmax = stat.Quantile(ClipQuantile, stat.LinInterp, finite, nil)
		if !(vmax > 0) || math.IsInf(vmax, 0) {
			vmax = finite[len(finite)-1]
		}
	}
	if !(vmax > 0) {
		vmax = 1
	}

	return Norm{VMax: vmax, Gamma: math.Max(minGamma, 1/(1+exposure))}, nil
}

// Apply clips v to [0, vmax] and returns (v/vmax)^γ.
func (n Norm) Apply(v float64) float64 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	x := v / n.VMax
	if x >= 1 {
		return 1
	}
	if n.Gamma == 1 {
		return x
	}
	return math.Pow(x, n.Gamma)
}

// Exposure returns a normalised copy of density. The input is not modified.
func Exposure(density []float64, exposure float64) ([]float64, error) {
	norm, err := NewNorm(density, exposure)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(density))
	for i, v := range density {
		out[i] = norm.Apply(v)
	}
	return out, nil
}
