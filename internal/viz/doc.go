// Package viz renders assembled orbitals in the terminal.
//
// Nothing here touches the engine's arrays; every mapping returns new data:
//
//   - [Exposure]: percentile-clipped, power-law normalisation of |ψ|²
//   - [Heatmap]: shaded, colour-mapped preview of the x–z slice, z up
//   - [Contour]: Braille outline of the region above a density level
//   - [RadialPlot]: asciigraph plot of P(r) against r/a_μ
//   - [Summary]: styled diagnostics block
//
// Two themes mirror the light and dark figure styles; [GetTheme] selects one
// by name.
package viz
