package special

import (
	"math"

	"github.com/san-kum/hwf/internal/quantum"
)

// LegendreScaled evaluates the associated Legendre function without the
// Condon–Shortley phase, for m >= 0, as value·exp(logScale).
//
// The recurrence is seeded with P_m^m/(2m−1)!! = (1−x²)^{m/2}, and
// logScale = ln (2m−1)!! restores the true magnitude.
func LegendreScaled(l, m int, x float64) (value, logScale float64, err error) {
	if err := checkLegendre(l, m, x); err != nil {
		return 0, 0, err
	}
	if m < 0 {
		return 0, 0, &quantum.DomainError{Kernel: "LegendreScaled", Arg: "m", Value: float64(m)}
	}
	logScale, err = LogDoubleFactorialOdd(m)
	if err != nil {
		return 0, 0, err
	}
	return legendreScaled(l, m, x), logScale, nil
}

// LegendreScaledUnchecked is LegendreScaled's recurrence without validation
// or the log scale. Callers guarantee 0 <= m <= l and |x| <= 1.
func LegendreScaledUnchecked(l, m int, x float64) float64 {
	return legendreScaled(l, m, x)
}

func legendreScaled(l, m int, x float64) float64 {
	pmm := 1.0
	if m > 0 {
		s := (1 - x) * (1 + x)
		if s < 0 {
			s = 0
		}
		pmm = math.Pow(s, 0.5*float64(m))
	}
	if l == m {
		return pmm
	}

	pm1 := x * float64(2*m+1) * pmm
	if l == m+1 {
		return pm1
	}

	var pl float64
	for ll := m + 2; ll <= l; ll++ {
		pl = (x*float64(2*ll-1)*pm1 - float64(ll+m-1)*pmm) / float64(ll-m)
		pmm, pm1 = pm1, pl
	}
	return pl
}

// AssocLegendre returns P_l^m(x) including the Condon–Shortley phase.
// Negative orders use P_l^{−m} = (−1)^m (l−m)!/(l+m)! P_l^m.
func AssocLegendre(l, m int, x float64) (float64, error) {
	if err := checkLegendre(l, m, x); err != nil {
		return 0, err
	}

	am := m
	if am < 0 {
		am = -am
	}
	v, logScale, err := LegendreScaled(l, am, x)
	if err != nil {
		return 0, err
	}

	if m >= 0 {
		if am%2 == 1 {
			v = -v
		}
		return v * math.Exp(logScale), nil
	}

	// The (−1)^m of the negative-order relation cancels the phase of P_l^{|m|}.
	lo, err := LogFactorial(l - am)
	if err != nil {
		return 0, err
	}
	hi, err := LogFactorial(l + am)
	if err != nil {
		return 0, err
	}
	return v * math.Exp(logScale+lo-hi), nil
}

func checkLegendre(l, m int, x float64) error {
	if l < 0 {
		return &quantum.DomainError{Kernel: "AssocLegendre", Arg: "l", Value: float64(l)}
	}
	if m > l || m < -l {
		return &quantum.DomainError{Kernel: "AssocLegendre", Arg: "m", Value: float64(m)}
	}
	if !(x >= -1 && x <= 1) {
		return &quantum.DomainError{Kernel: "AssocLegendre", Arg: "x", Value: x}
	}
	return nil
}
