package analysis

import (
	"github.com/san-kum/hwf/internal/field"
	"github.com/san-kum/hwf/internal/orbital"
)

// Summary collects diagnostics for one assembled field. Radii are in a_μ.
type Summary struct {
	N, L, M int
	Z       float64
	AMu     float64 // metres

	RadialNodes   int
	ExpectedNodes int
	RadialNorm    float64
	AngularNorm   float64

	PeakRadius   float64
	MeanRadius   float64 // over the sampled window
	ExpectedMean float64 // (3n² − l(l+1))/(2Z)

	MaxDensity float64 // m⁻³
	Advisories []string
}

// Summarize evaluates every diagnostic for f.
func Summarize(f *field.Field) (Summary, error) {
	st := f.State
	rad, err := orbital.RadialFor(st)
	if err != nil {
		return Summary{}, err
	}
	ang, err := orbital.AngularFor(st)
	if err != nil {
		return Summary{}, err
	}

	nodes, err := RadialNodes(rad, DefaultNodeSamples)
	if err != nil {
		return Summary{}, err
	}
	peak, err := MostProbableRadius(f.Radial)
	if err != nil {
		return Summary{}, err
	}
	mean, err := MeanRadius(f.Radial)
	if err != nil {
		return Summary{}, err
	}
	maxDensity, _ := f.MaxDensity()

	s := Summary{
		N:             st.N(),
		L:             st.L(),
		M:             st.M(),
		Z:             st.Z(),
		AMu:           f.AMu,
		RadialNodes:   nodes,
		ExpectedNodes: st.N() - st.L() - 1,
		RadialNorm:    RadialNorm(rad, 0),
		AngularNorm:   AngularNorm(ang, 0),
		PeakRadius:    peak / f.AMu,
		MeanRadius:    mean / f.AMu,
		ExpectedMean:  st.MeanRadiusUnits(),
		MaxDensity:    maxDensity,
	}
	for _, adv := range f.Advisories {
		s.Advisories = append(s.Advisories, adv.Error())
	}
	return s, nil
}
