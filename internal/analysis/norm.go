package analysis

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"

	"github.com/san-kum/hwf/internal/orbital"
)

const (
	minRadialPoints  = 1000
	minAngularPoints = 64
)

// RadialNorm integrates r²R_nl² over [0, r(ρ = 4n+80)], where the tail beyond
// is below double precision. Points <= 0 selects a size that grows with n.
func RadialNorm(rad *orbital.Radial, points int) float64 {
	n := rad.N()
	if points <= 0 {
		points = max(minRadialPoints, 20*n)
	}
	rMax := rad.Radius(float64(4*n + 80))
	return quad.Fixed(func(r float64) float64 {
		p, _ := rad.Probability(r)
		return p
	}, 0, rMax, points, quad.Legendre{}, 0)
}

// AngularNorm returns ∫|Y_lm|² dΩ. |Y|² does not depend on φ, so the integral
// reduces to 2π∫|Y|² d(cosθ), a polynomial of degree 2l that an n-point rule
// integrates exactly for n > l. Points <= 0 picks such a rule.
func AngularNorm(ang *orbital.Angular, points int) float64 {
	if points <= 0 {
		points = max(minAngularPoints, ang.L()+2)
	}
	return 2 * math.Pi * quad.Fixed(func(x float64) float64 {
		y, _ := ang.AtCos(x, 0)
		return real(y)*real(y) + imag(y)*imag(y)
	}, -1, 1, points, quad.Legendre{}, 0)
}
