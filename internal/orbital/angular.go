package orbital

import (
	"math"
	"math/cmplx"

	"github.com/san-kum/hwf/internal/quantum"
	"github.com/san-kum/hwf/internal/special"
)

// Angular evaluates Y_l^m(θ,φ) for a fixed (l, m).
type Angular struct {
	l, m    int
	am      int
	logNorm float64 // ln of sqrt((2l+1)/4π·(l−|m|)!/(l+|m|)!)·(2|m|−1)!!
	sign    float64 // (−1)^|m|
	coef    float64 // sign·exp(logNorm)
}

// NewAngular precomputes the normalisation
//
//	Y_l^m = (−1)^m·sqrt((2l+1)/(4π)·(l−m)!/(l+m)!)·P_l^m(cosθ)·e^{imφ}
//
// for m >= 0. Negative m is derived from Y_l^{−m} = (−1)^m·conj(Y_l^m).
func NewAngular(l, m int) (*Angular, error) {
	if l < 0 {
		return nil, &quantum.DomainError{Kernel: "Angular", Arg: "l", Value: float64(l)}
	}
	if m > l || m < -l {
		return nil, &quantum.DomainError{Kernel: "Angular", Arg: "m", Value: float64(m)}
	}

	am := m
	if am < 0 {
		am = -am
	}
	lo, err := special.LogFactorial(l - am)
	if err != nil {
		return nil, err
	}
	hi, err := special.LogFactorial(l + am)
	if err != nil {
		return nil, err
	}
	dfact, err := special.LogDoubleFactorialOdd(am)
	if err != nil {
		return nil, err
	}

	sign := 1.0
	if am%2 == 1 {
		sign = -1
	}

	logNorm := 0.5*(math.Log(float64(2*l+1))-math.Log(4*math.Pi)+lo-hi) + dfact
	return &Angular{
		l:       l,
		m:       m,
		am:      am,
		logNorm: logNorm,
		sign:    sign,
		coef:    sign * math.Exp(logNorm),
	}, nil
}

// AngularFor builds the evaluator for a validated state.
func AngularFor(st quantum.State) (*Angular, error) {
	return NewAngular(st.L(), st.M())
}

// L returns the azimuthal quantum number.
func (a *Angular) L() int { return a.l }

// M returns the magnetic quantum number.
func (a *Angular) M() int { return a.m }

// Polar returns the real θ-dependent factor Θ(cosθ) such that
// Y_l^{|m|} = Θ·e^{i|m|φ}. Θ already carries the (−1)^|m| phase.
func (a *Angular) Polar(cosTheta float64) (float64, error) {
	if !(cosTheta >= -1 && cosTheta <= 1) {
		return 0, &quantum.DomainError{Kernel: "Angular", Arg: "cosTheta", Value: cosTheta}
	}
	return a.polar(cosTheta), nil
}

func (a *Angular) polar(cosTheta float64) float64 {
	return a.coef * special.LegendreScaledUnchecked(a.l, a.am, cosTheta)
}

// AtCos returns Y_l^m given cosθ directly, avoiding an arccos round trip.
func (a *Angular) AtCos(cosTheta, phi float64) (complex128, error) {
	if !(cosTheta >= -1 && cosTheta <= 1) {
		return 0, &quantum.DomainError{Kernel: "Angular", Arg: "cosTheta", Value: cosTheta}
	}
	if math.IsNaN(phi) || math.IsInf(phi, 0) {
		return 0, &quantum.DomainError{Kernel: "Angular", Arg: "phi", Value: phi}
	}
	return a.atCos(cosTheta, phi), nil
}

func (a *Angular) atCos(cosTheta, phi float64) complex128 {
	return a.combine(a.polar(cosTheta), phi)
}

// combine attaches the azimuthal phase to a precomputed polar factor.
func (a *Angular) combine(theta, phi float64) complex128 {
	if a.am == 0 {
		return complex(theta, 0)
	}
	s, c := math.Sincos(float64(a.am) * phi)
	y := complex(theta*c, theta*s)
	if a.m < 0 {
		y = complex(a.sign, 0) * cmplx.Conj(y)
	}
	return y
}

// At returns Y_l^m(θ, φ) for polar angle θ in [0, π].
func (a *Angular) At(theta, phi float64) (complex128, error) {
	if !(theta >= 0 && theta <= math.Pi) {
		return 0, &quantum.DomainError{Kernel: "Angular", Arg: "theta", Value: theta}
	}
	return a.AtCos(math.Cos(theta), phi)
}

// Eval evaluates Y over paired (θ, φ) samples.
func (a *Angular) Eval(thetas, phis []float64) ([]complex128, error) {
	if len(thetas) != len(phis) {
		return nil, &quantum.DomainError{Kernel: "Angular", Arg: "len(phi)", Value: float64(len(phis))}
	}
	out := make([]complex128, len(thetas))
	for i := range thetas {
		y, err := a.At(thetas[i], phis[i])
		if err != nil {
			return nil, err
		}
		out[i] = y
	}
	return out, nil
}
