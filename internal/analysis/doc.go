// Package analysis provides diagnostics for evaluated orbitals.
//
// The package checks an orbital against the properties it must satisfy:
//
//   - [RadialNodes]: sign changes of R_nl, expected n−ℓ−1
//   - [RadialNorm]: ∫r²R² dr by Gauss–Legendre quadrature
//   - [AngularNorm]: ∫|Y|² dΩ by Gauss–Legendre quadrature
//   - [MostProbableRadius] and [MeanRadius]: moments of a sampled P(r)
//   - [Summarize]: all of the above for an assembled field
//
// # Sanity Check
//
//	s, err := analysis.Summarize(f)
//	if s.RadialNodes != s.ExpectedNodes {
//	    // sampling missed a node or the kernel degraded
//	}
package analysis
