// Package orbital evaluates the two factors of a hydrogenic eigenfunction,
// ψ_nlm(r,θ,φ) = R_nl(r)·Y_l^m(θ,φ).
//
//   - [Radial]: normalised R_nl(r) with log-space normalisation
//   - [Angular]: complex spherical harmonic with the Condon–Shortley phase
//
// Both evaluators precompute their normalisation once from log-gamma
// differences and are safe for concurrent use; they hold no mutable state.
//
// # Precision
//
// Normalisation stays finite for n in the hundreds. The radial power term
// ρ^l and the Laguerre factor are evaluated in linear space, so for
// n beyond [quantum.PrecisionRegimeN] their product can lose precision far
// out in the tail; treat that regime as measured, not guaranteed.
package orbital
