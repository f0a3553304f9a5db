package analysis

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"

	"github.com/san-kum/hwf/internal/field"
	"github.com/san-kum/hwf/internal/quantum"
)

func checkCurve(c field.RadialCurve) error {
	if c.Len() < 2 || len(c.P) != c.Len() {
		return &quantum.ParameterError{Name: "curve", Value: float64(c.Len()), Reason: "need at least 2 matching samples"}
	}
	return nil
}

// MostProbableRadius returns the sampled r (metres) with the largest P(r).
func MostProbableRadius(c field.RadialCurve) (float64, error) {
	if err := checkCurve(c); err != nil {
		return 0, err
	}
	return c.R[floats.MaxIdx(c.P)], nil
}

// MeanRadius returns ∫rP dr / ∫P dr over the sampled window, by the
// trapezoidal rule. It matches ⟨r⟩ only when the window covers the orbital.
func MeanRadius(c field.RadialCurve) (float64, error) {
	if err := checkCurve(c); err != nil {
		return 0, err
	}
	weighted := make([]float64, c.Len())
	floats.MulTo(weighted, c.R, c.P)

	mass := integrate.Trapezoidal(c.R, c.P)
	if mass == 0 {
		return 0, &quantum.ParameterError{Name: "curve", Value: 0, Reason: "P(r) integrates to zero"}
	}
	return integrate.Trapezoidal(c.R, weighted) / mass, nil
}
