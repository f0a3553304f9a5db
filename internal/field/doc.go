// Package field assembles ψ = R·Y over a grid slice and derives the
// probability density |ψ|² and the radial distribution P(r) = r²R².
//
// The assembler is a pure pipeline: immutable inputs in, an immutable
// [Field] out. Grid rows are evaluated in parallel with no shared mutable
// state, so identical inputs always produce identical arrays.
//
// # Example
//
//	st, _ := quantum.NewState(3, 2, 1)
//	spec, _ := grid.NewSliceSpec(grid.PhiPlane, 0, 1.8, 0, 600)
//	f, err := field.NewAssembler().Assemble(ctx, st, spec)
//
// The density is exposed raw. Exposure and colour mapping belong to the
// consumer, which must treat the Field as read-only.
package field
