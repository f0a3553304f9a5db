package orbital

import (
	"math"

	"github.com/san-kum/hwf/internal/quantum"
	"github.com/san-kum/hwf/internal/special"
)

// Radial evaluates R_nl(r) for a fixed (n, l, Z, a_μ).
type Radial struct {
	n, l    int
	z, aMu  float64
	logNorm float64
	scale   float64 // ρ per metre: 2Z/(n a_μ)
	degree  int     // n − l − 1
	alpha   float64 // 2l + 1
}

// NewRadial precomputes
//
//	ln N = 3/2·ln(2Z/(n a_μ)) + ½[ln Γ(n−l) − ln 2n − ln Γ(n+l+1)]
func NewRadial(n, l int, z, aMu float64) (*Radial, error) {
	if n < 1 {
		return nil, &quantum.DomainError{Kernel: "Radial", Arg: "n", Value: float64(n)}
	}
	if l < 0 || l > n-1 {
		return nil, &quantum.DomainError{Kernel: "Radial", Arg: "l", Value: float64(l)}
	}
	if !(z > 0) || math.IsInf(z, 0) {
		return nil, &quantum.DomainError{Kernel: "Radial", Arg: "Z", Value: z}
	}
	if !(aMu > 0) || math.IsInf(aMu, 0) {
		return nil, &quantum.DomainError{Kernel: "Radial", Arg: "aMu", Value: aMu}
	}

	scale := 2 * z / (float64(n) * aMu)
	lgLow, err := special.LogGamma(float64(n - l))
	if err != nil {
		return nil, err
	}
	lgHigh, err := special.LogGamma(float64(n + l + 1))
	if err != nil {
		return nil, err
	}
	logNorm := 1.5*math.Log(scale) + 0.5*(lgLow-math.Log(2*float64(n))-lgHigh)

	return &Radial{
		n:       n,
		l:       l,
		z:       z,
		aMu:     aMu,
		logNorm: logNorm,
		scale:   scale,
		degree:  n - l - 1,
		alpha:   float64(2*l + 1),
	}, nil
}

// RadialFor builds the evaluator for a validated state.
func RadialFor(st quantum.State) (*Radial, error) {
	return NewRadial(st.N(), st.L(), st.Z(), st.AMu())
}

func (r *Radial) N() int           { return r.n }
func (r *Radial) L() int           { return r.l }
func (r *Radial) LogNorm() float64 { return r.logNorm }

// Radius converts ρ back to metres.
func (r *Radial) Radius(rho float64) float64 { return rho / r.scale }

// Rho converts a radius in metres to ρ = 2Zr/(n a_μ).
func (r *Radial) Rho(radius float64) float64 { return r.scale * radius }

// At returns R_nl at radius (metres).
func (r *Radial) At(radius float64) (float64, error) {
	if !(radius >= 0) || math.IsInf(radius, 1) {
		return 0, &quantum.DomainError{Kernel: "Radial", Arg: "r", Value: radius}
	}
	return r.at(radius), nil
}

// at skips the domain check; radius must be finite and >= 0.
// ρ^l and the Laguerre scale are folded into one exponent, so large l never
// meets an underflowed exp(−ρ/2) against an overflowed power.
func (r *Radial) at(radius float64) float64 {
	rho := r.scale * radius
	if rho == 0 {
		// 0^0 is 1 for s states, every other l vanishes.
		if r.l > 0 {
			return 0
		}
		return math.Exp(r.logNorm) * special.LaguerreUnchecked(r.degree, r.alpha, 0)
	}

	lag, logScale := special.LaguerreScaledUnchecked(r.degree, r.alpha, rho)
	if lag == 0 {
		return 0
	}
	v := math.Exp(r.logNorm - 0.5*rho + float64(r.l)*math.Log(rho) + math.Log(math.Abs(lag)) + logScale)
	if lag < 0 {
		return -v
	}
	return v
}

// Eval returns R_nl for every radius, or fails on the first negative one.
func (r *Radial) Eval(radii []float64) ([]float64, error) {
	out := make([]float64, len(radii))
	if err := r.EvalInto(out, radii); err != nil {
		return nil, err
	}
	return out, nil
}

// EvalInto writes R_nl(radii[i]) into dst[i]; len(dst) must equal len(radii).
func (r *Radial) EvalInto(dst, radii []float64) error {
	if len(dst) != len(radii) {
		return &quantum.DomainError{Kernel: "Radial", Arg: "len(dst)", Value: float64(len(dst))}
	}
	for i, radius := range radii {
		v, err := r.At(radius)
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}

// Probability returns P_nl(r) = r²·R_nl(r)².
func (r *Radial) Probability(radius float64) (float64, error) {
	v, err := r.At(radius)
	if err != nil {
		return 0, err
	}
	return radius * radius * v * v, nil
}
