package analysis

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/hwf/internal/orbital"
	"github.com/san-kum/hwf/internal/quantum"
)

// DefaultNodeSamples is the sampling density used by Summarize. RadialNodes
// raises it to nodeSamplesPerN·n for large n.
const DefaultNodeSamples = 4000

// Nodes sit at least π/(2√n) apart in √ρ, so 32 samples per unit of n keep
// roughly 25 samples between neighbouring nodes.
const nodeSamplesPerN = 32

// SignChanges counts sign flips between consecutive non-zero values.
// Exact zeros are skipped, so a sample landing on a node is not double counted.
func SignChanges(values []float64) int {
	count := 0
	prev := 0.0
	for _, v := range values {
		if v == 0 {
			continue
		}
		if prev != 0 && (v > 0) != (prev > 0) {
			count++
		}
		prev = v
	}
	return count
}

// NodeWindow returns the ρ range (0, 4n+10] that holds every radial node.
func NodeWindow(n int) float64 {
	return float64(4*n + 10)
}

// RadialNodes samples R_nl on a grid uniform in √ρ over (0, 4n+10] and counts
// sign changes. Inner nodes crowd toward the origin as ~1/n in ρ but stay
// evenly spread in √ρ.
func RadialNodes(rad *orbital.Radial, samples int) (int, error) {
	if samples < 2 {
		return 0, &quantum.ParameterError{Name: "samples", Value: float64(samples), Reason: "need at least 2 samples"}
	}
	samples = max(samples, nodeSamplesPerN*rad.N())

	sMax := math.Sqrt(NodeWindow(rad.N()))
	radii := make([]float64, samples)
	floats.Span(radii, sMax/float64(samples), sMax)
	for i, s := range radii {
		radii[i] = rad.Radius(s * s)
	}

	values, err := rad.Eval(radii)
	if err != nil {
		return 0, err
	}
	return SignChanges(values), nil
}
