package quantum

import (
	"fmt"
	"math"
	"sort"
)

// CODATA 2018 values, SI units.
const (
	ElectronMass = 9.1093837015e-31  // kg
	ProtonMass   = 1.67262192369e-27 // kg
	BohrRadius   = 5.29177210903e-11 // m
)

// PhysicalConstants is the read-only table handed to the mass calculator.
type PhysicalConstants struct {
	ElectronMass float64
	ProtonMass   float64
	BohrRadius   float64
}

// Constants is initialised once and never mutated.
var Constants = PhysicalConstants{
	ElectronMass: ElectronMass,
	ProtonMass:   ProtonMass,
	BohrRadius:   BohrRadius,
}

// Nucleus pairs a bare nucleus with its charge.
type Nucleus struct {
	Symbol string
	Z      float64
	Mass   float64 // kg
}

// Nuclei lists bare nuclear masses for common one-electron systems.
var Nuclei = map[string]Nucleus{
	"H":  {Symbol: "H", Z: 1, Mass: ProtonMass},
	"D":  {Symbol: "D", Z: 1, Mass: 3.3435837724e-27},
	"T":  {Symbol: "T", Z: 1, Mass: 5.0073567446e-27},
	"He": {Symbol: "He", Z: 2, Mass: 6.6446573357e-27},
	"Li": {Symbol: "Li", Z: 3, Mass: 1.1647931e-26},
}

// LookupNucleus returns the nucleus registered under symbol.
func LookupNucleus(symbol string) (Nucleus, error) {
	nuc, ok := Nuclei[symbol]
	if !ok {
		return Nucleus{}, fmt.Errorf("%w: unknown nucleus %q (available: %v)", ErrInvalidParameter, symbol, NucleusSymbols())
	}
	return nuc, nil
}

// NucleusSymbols returns the registered symbols in sorted order.
func NucleusSymbols() []string {
	names := make([]string, 0, len(Nuclei))
	for name := range Nuclei {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ReducedMassContext holds μ and the Bohr radius rescaled by m_e/μ.
type ReducedMassContext struct {
	Mu  float64 // kg
	AMu float64 // m
}

// ReducedMass computes μ = me·M/(me+M) and a_μ = a0·me/μ.
func ReducedMass(me, nuclearMass, a0 float64) (ReducedMassContext, error) {
	if !(nuclearMass > 0) || math.IsInf(nuclearMass, 0) {
		return ReducedMassContext{}, invalid("M", nuclearMass, "nuclear mass must be positive and finite")
	}
	if !(me > 0) || !(a0 > 0) {
		return ReducedMassContext{}, invalid("me", me, "electron mass and Bohr radius must be positive")
	}
	mu := me * nuclearMass / (me + nuclearMass)
	return ReducedMassContext{Mu: mu, AMu: a0 * (me / mu)}, nil
}

// InfiniteMass is the M → ∞ limit: μ = me and a_μ = a0.
func InfiniteMass() ReducedMassContext {
	return ReducedMassContext{Mu: Constants.ElectronMass, AMu: Constants.BohrRadius}
}
