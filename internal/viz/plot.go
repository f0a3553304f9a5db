package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/hwf/internal/field"
	"github.com/san-kum/hwf/internal/quantum"
)

type PlotOptions struct {
	Width, Height int
	Unit          string // axis unit name, a_μ or a_0
}

// RadialPlot draws a_μ·P(r), which is dimensionless, against r/a_μ.
func RadialPlot(c field.RadialCurve, aMu float64, opts PlotOptions) (string, error) {
	if c.Len() < 2 {
		return "", fmt.Errorf("%w: radial curve has %d samples", quantum.ErrInvalidParameter, c.Len())
	}
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Height <= 0 {
		opts.Height = 12
	}
	if opts.Unit == "" {
		opts.Unit = "a_μ"
	}

	data := make([]float64, opts.Width)
	n := c.Len()
	for i := range data {
		k := i * (n - 1) / max(1, opts.Width-1)
		data[i] = c.P[k] * aMu
	}

	caption := fmt.Sprintf("P(r)·%s vs r/%s ∈ [0, %.3g]", opts.Unit, opts.Unit, c.R[n-1]/aMu)
	return asciigraph.Plot(data,
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.LowerBound(0),
		asciigraph.Precision(3),
		asciigraph.Caption(caption),
	), nil
}
