package quantum

import "math"

// PrecisionRegimeN bounds the range where log-gamma normalisation and the
// polynomial recurrences are known to hold full double precision. Beyond it
// results are still produced but flagged as measured-precision.
const PrecisionRegimeN = 100

// State is an immutable, validated hydrogenic bound state.
type State struct {
	n, l, m     int
	z           float64
	mass        float64
	reducedMass bool
	ctx         ReducedMassContext
}

// Option configures a State before validation.
type Option func(*State)

// WithCharge sets the nuclear charge Z.
func WithCharge(z float64) Option {
	return func(s *State) { s.z = z }
}

// WithNuclearMass sets the nuclear mass in kg.
func WithNuclearMass(m float64) Option {
	return func(s *State) { s.mass = m }
}

// WithNucleus sets both charge and mass from a registered nucleus.
func WithNucleus(nuc Nucleus) Option {
	return func(s *State) {
		s.z = nuc.Z
		s.mass = nuc.Mass
	}
}

// WithoutReducedMass uses the infinite-nuclear-mass Bohr radius.
func WithoutReducedMass() Option {
	return func(s *State) { s.reducedMass = false }
}

// NewState validates (n, l, m, Z, M) and derives the reduced-mass context.
func NewState(n, l, m int, opts ...Option) (State, error) {
	s := State{
		n:           n,
		l:           l,
		m:           m,
		z:           1,
		mass:        Constants.ProtonMass,
		reducedMass: true,
	}
	for _, opt := range opts {
		opt(&s)
	}

	if n < 1 {
		return State{}, invalid("n", float64(n), "must satisfy n >= 1")
	}
	if l < 0 || l > n-1 {
		return State{}, invalid("l", float64(l), "must satisfy 0 <= l <= n-1")
	}
	if m < -l || m > l {
		return State{}, invalid("m", float64(m), "must satisfy -l <= m <= l")
	}
	if !(s.z > 0) || math.IsInf(s.z, 0) {
		return State{}, invalid("Z", s.z, "nuclear charge must be positive")
	}

	// M is validated even when the infinite-mass mode ignores it.
	ctx, err := ReducedMass(Constants.ElectronMass, s.mass, Constants.BohrRadius)
	if err != nil {
		return State{}, err
	}
	if !s.reducedMass {
		ctx = InfiniteMass()
	}
	s.ctx = ctx
	return s, nil
}

func (s State) N() int                { return s.n }
func (s State) L() int                { return s.l }
func (s State) M() int                { return s.m }
func (s State) Z() float64            { return s.z }
func (s State) NuclearMass() float64  { return s.mass }
func (s State) UsesReducedMass() bool { return s.reducedMass }

// Context returns the reduced-mass pair computed at construction.
func (s State) Context() ReducedMassContext { return s.ctx }

// AMu is shorthand for Context().AMu.
func (s State) AMu() float64 { return s.ctx.AMu }

// MeanRadius returns ⟨r⟩ = a_μ(3n² − l(l+1))/(2Z) in metres.
func (s State) MeanRadius() float64 {
	return s.ctx.AMu * s.MeanRadiusUnits()
}

// MeanRadiusUnits returns ⟨r⟩ in units of a_μ.
func (s State) MeanRadiusUnits() float64 {
	n, l := float64(s.n), float64(s.l)
	return (3*n*n - l*(l+1)) / (2 * s.z)
}

// Degraded reports whether n lies outside the guaranteed-precision regime.
func (s State) Degraded() bool {
	return s.n > PrecisionRegimeN
}
