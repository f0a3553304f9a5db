// Package grid builds the sampled x–z slice (y = 0) on which orbitals are
// evaluated, together with the derived spherical coordinates (r, cosθ, φ)
// of every sample.
package grid
