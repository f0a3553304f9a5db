package special

import (
	"math"

	"github.com/san-kum/hwf/internal/quantum"
)

// Laguerre evaluates the generalized Laguerre polynomial L_k^alpha(x)
// with the upward recurrence
//
//	(j+1) L_{j+1} = (2j+1+alpha−x) L_j − (j+alpha) L_{j−1}
//
// seeded by L_0 = 1 and L_1 = 1+alpha−x.
func Laguerre(k int, alpha, x float64) (float64, error) {
	if err := checkLaguerre(k, alpha, x); err != nil {
		return 0, err
	}
	return laguerre(k, alpha, x), nil
}

func checkLaguerre(k int, alpha, x float64) error {
	if k < 0 {
		return &quantum.DomainError{Kernel: "Laguerre", Arg: "k", Value: float64(k)}
	}
	if !(alpha > -1) {
		return &quantum.DomainError{Kernel: "Laguerre", Arg: "alpha", Value: alpha}
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return &quantum.DomainError{Kernel: "Laguerre", Arg: "x", Value: x}
	}
	return nil
}

// laguerre is the unchecked recurrence used by the hot loops.
func laguerre(k int, alpha, x float64) float64 {
	if k == 0 {
		return 1
	}
	prev := 1.0
	curr := 1 + alpha - x
	for j := 1; j < k; j++ {
		fj := float64(j)
		next := ((2*fj+1+alpha-x)*curr - (fj+alpha)*prev) / (fj + 1)
		prev, curr = curr, next
	}
	return curr
}

// laguerreRescale bounds |L_j| inside the scaled recurrence.
const laguerreRescale = 1e150

var logLaguerreRescale = math.Log(laguerreRescale)

// LaguerreScaled returns L_k^alpha(x) as value·exp(logScale). The recurrence
// divides both terms by 1e150 whenever |L_j| passes it, so the result stays
// finite for degrees whose true value exceeds the float64 range.
func LaguerreScaled(k int, alpha, x float64) (value, logScale float64, err error) {
	if err := checkLaguerre(k, alpha, x); err != nil {
		return 0, 0, err
	}
	value, logScale = laguerreScaled(k, alpha, x)
	return value, logScale, nil
}

// LaguerreScaledUnchecked is LaguerreScaled without argument validation.
func LaguerreScaledUnchecked(k int, alpha, x float64) (value, logScale float64) {
	return laguerreScaled(k, alpha, x)
}

func laguerreScaled(k int, alpha, x float64) (float64, float64) {
	if k == 0 {
		return 1, 0
	}
	prev := 1.0
	curr := 1 + alpha - x
	logScale := 0.0
	for j := 1; j < k; j++ {
		fj := float64(j)
		next := ((2*fj+1+alpha-x)*curr - (fj+alpha)*prev) / (fj + 1)
		prev, curr = curr, next
		if math.Abs(curr) > laguerreRescale {
			prev /= laguerreRescale
			curr /= laguerreRescale
			logScale += logLaguerreRescale
		}
	}
	return curr, logScale
}

// LaguerreUnchecked skips argument validation. Callers must guarantee
// k >= 0, alpha > −1 and finite x.
func LaguerreUnchecked(k int, alpha, x float64) float64 {
	return laguerre(k, alpha, x)
}
