// Package special implements the special-function kernels behind hydrogenic
// orbitals: log-gamma, associated Laguerre and associated Legendre.
//
// Factorials never appear directly. Normalisation constants are built from
// [LogGamma] differences and exponentiated once, and both polynomial families
// are evaluated by upward three-term recurrences, so evaluation is O(degree)
// with no recursion and no intermediate factorial overflow.
//
// All kernels return a [quantum.DomainError] for inputs outside their domain
// instead of panicking or returning NaN.
package special
